package models

// DatabaseStats aggregates table counters for one database.
type DatabaseStats struct {
	Database     string                 `json:"database"`
	TotalTables  int                    `json:"total_tables"`
	TotalRows    uint64                 `json:"total_rows"`
	TotalBytes   uint64                 `json:"total_bytes"`
	EngineCounts map[string]EngineStats `json:"engine_counts"`
}

// EngineStats aggregates the tables sharing one engine.
type EngineStats struct {
	Count      int    `json:"count"`
	TotalRows  uint64 `json:"total_rows"`
	TotalBytes uint64 `json:"total_bytes"`
}
