package entity

// Commands accepted by the picker server, one per line.
const (
	CmdPick    = "pick"
	CmdReset   = "reset"
	CmdList    = "list"
	CmdLeft    = "left"
	CmdCurrent = "current"
	CmdQuit    = "quit"
)

// Hello is the first line a client receives after connecting.
type Hello struct {
	Session string `json:"session"`
	Total   int    `json:"total"`
	Left    int    `json:"left"`
}

// Reply answers a single command.
type Reply struct {
	Left     int     `json:"left"`
	Total    int     `json:"total"`
	Selected *Movie  `json:"selected"`
	Movies   []Movie `json:"movies,omitempty"`
	Picked   *bool   `json:"picked,omitempty"`
	Bye      bool    `json:"bye,omitempty"`
	Error    string  `json:"error,omitempty"`
}
