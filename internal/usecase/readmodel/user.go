package readmodel

// UserRM is the slim user projection kept in the session store. It carries
// no credentials; authentication itself happens outside the core.
type UserRM struct {
	ID       int64  `json:"id"`
	NickName string `json:"nickName"`
	Icon     string `json:"icon"`
}
