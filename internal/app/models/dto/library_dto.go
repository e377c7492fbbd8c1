package dto

// LibraryStatsResponse reports the total number of library materials
type LibraryStatsResponse struct {
	TotalMaterials int64 `json:"totalMaterials"`
}
