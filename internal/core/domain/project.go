package domain

type Project struct {
	ID   uint64
	Name string
}
