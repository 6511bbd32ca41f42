package model

// Category はカタログのカテゴリ。slug/name どちらかが欠けていたら補完する。
type Category struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}
