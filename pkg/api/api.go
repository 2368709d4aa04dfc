package api

// Problem is a family of conflict sets over string elements.
type Problem struct {
	Name      string     `json:"name,omitempty"`
	Conflicts [][]string `json:"conflicts"`
}

type Result struct {
	Name         string        `json:"name,omitempty"`
	HittingSets  [][]string    `json:"hittingSets"`
	Stats        *Stats        `json:"stats,omitempty"`
	Verification *Verification `json:"verification,omitempty"`
}

// Verification is the document form of a SAT check of a result.
type Verification struct {
	Ok         bool       `json:"ok"`
	NotHitting [][]string `json:"notHitting,omitempty"`
	NotMinimal [][]string `json:"notMinimal,omitempty"`
	Missing    [][]string `json:"missing,omitempty"`
}

// Stats counts the decisions taken while growing the HS-tree.
type Stats struct {
	Nodes          int `json:"nodes"`
	ReusedByPath   int `json:"reusedByPath"`
	ReusedAsClosed int `json:"reusedAsClosed"`
	ReusedByLabel  int `json:"reusedByLabel"`
	Closed         int `json:"closed"`
	Prunes         int `json:"prunes"`
	RemovedNodes   int `json:"removedNodes"`
	RemovedArcs    int `json:"removedArcs"`
}
