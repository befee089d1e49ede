package history

import "uploadlink/frontend/shared/nav"

type AttemptRow struct {
	ID        int64
	Username  string
	Target    string
	Filename  string
	Succeeded bool
	Message   string
	CreatedAt string
}

type PageData struct {
	Nav  nav.TopNavData
	Rows []AttemptRow
}
