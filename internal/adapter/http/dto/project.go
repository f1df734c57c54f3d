package dto

type ProjectItem struct {
	ProjectID uint64 `json:"project_id"`
	Name      string `json:"name"`
}

type EnvironmentItem struct {
	Environment string `json:"environment"`
}
