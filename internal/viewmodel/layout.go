package viewmodel

import "github.com/BruksfildServices01/studio-booking/internal/domain/access"

// Notice kinds map onto the dismissible alert styles of the templates.
const (
	NoticeSuccess = "success"
	NoticeDanger  = "danger"
	NoticeWarning = "warning"
	NoticeInfo    = "info"
)

type Notice struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func Success(msg string) *Notice { return &Notice{Kind: NoticeSuccess, Message: msg} }
func Danger(msg string) *Notice  { return &Notice{Kind: NoticeDanger, Message: msg} }
func Warning(msg string) *Notice { return &Notice{Kind: NoticeWarning, Message: msg} }
func Info(msg string) *Notice    { return &Notice{Kind: NoticeInfo, Message: msg} }

// AutoDismiss reports whether the notice closes itself after a few seconds.
func (n *Notice) AutoDismiss() bool {
	return n != nil && n.Kind == NoticeSuccess
}

// Layout captures shared chrome: title, navigation and the page notice.
type Layout struct {
	Title  string
	Page   access.Page
	State  access.NavState
	Nav    access.NavView
	Notice *Notice
}
