package backend

type RefKind uint8

const (
	RefKindHead RefKind = iota
	RefKindTag
	RefKindRemote
)

func (k RefKind) String() string {
	switch k {
	case RefKindTag:
		return "tag"
	case RefKindRemote:
		return "remote"
	default:
		return "head"
	}
}

// RawCommit is one record of the history log.
type RawCommit struct {
	Hash         string
	ParentHashes []string
	Author       string
	Email        string
	Date         int64 // seconds since epoch
	Subject      string
}

type Ref struct {
	Hash      string
	Name      string // short name: main, origin/main, v1
	Kind      RefKind
	Annotated bool
}

// RefData is the parsed reference listing.
type RefData struct {
	Head string // empty when HEAD could not be resolved
	Refs []Ref
}

type StashRecord struct {
	Hash               string
	Selector           string // stash@{N}
	BaseHash           string
	IndexHash          string
	UntrackedFilesHash string // empty when the stash carries no untracked files
	Author             string
	Email              string
	Date               int64
	Message            string
}

type BranchData struct {
	Branches []string
	Head     string // current branch, empty when detached
}

type CommitDetails struct {
	Hash         string
	ParentHashes []string
	Author       string
	Email        string
	Date         int64
	Committer    string
	Body         string
}

type LocalChanges struct {
	HasWorktree bool
	HasStaged   bool
	Untracked   int
	Changed     int // tracked entries with staged or worktree changes
}

// Count is the number of entries the working tree status reports.
func (c LocalChanges) Count() int {
	return c.Changed + c.Untracked
}

type ChangeKind string

const (
	ChangeAdded    ChangeKind = "A"
	ChangeModified ChangeKind = "M"
	ChangeDeleted  ChangeKind = "D"
	ChangeRenamed  ChangeKind = "R"
)

// NameStatus is one entry of a --name-status report.
type NameStatus struct {
	Kind    ChangeKind
	OldPath string
	NewPath string
}

// NumStat is one entry of a --numstat report. Binary is set when git prints "-" counts.
type NumStat struct {
	Path      string // new path, rename syntax already expanded
	Additions int
	Deletions int
	Binary    bool
}
