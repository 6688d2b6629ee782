package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   *uint64
		want string
	}{
		{nil, "N/A"},
		{uptr(0), "0 B"},
		{uptr(512), "512 B"},
		{uptr(4096), "4.0 KB"},
		{uptr(1536), "1.5 KB"},
		{uptr(5 * 1024 * 1024), "5.0 MB"},
		{uptr(3 * 1024 * 1024 * 1024), "3.0 GB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatBytes(tt.in))
	}
}

func TestFormatRows(t *testing.T) {
	tests := []struct {
		in   *uint64
		want string
	}{
		{nil, "N/A"},
		{uptr(0), "0"},
		{uptr(999), "999"},
		{uptr(1500), "1.5K"},
		{uptr(2_500_000), "2.5M"},
		{uptr(7_200_000_000), "7.2B"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatRows(tt.in))
	}
}

func TestEngineIcon(t *testing.T) {
	assert.Contains(t, engineIcon("MergeTree"), "fa-database")
	assert.Contains(t, engineIcon("ReplicatedMergeTree"), "fa-circle-nodes")
	assert.Contains(t, engineIcon("Distributed"), "fa-diagram-project")
	assert.Contains(t, engineIcon("MaterializedView"), "fa-eye")
	assert.Contains(t, engineIcon("Memory"), "fa-table")
}

func TestEngineStyle(t *testing.T) {
	assert.Equal(t, "fill:#1f77b4,stroke:#333,stroke-width:2px,color:#fff", engineStyle("MergeTree"))
	assert.Equal(t, "", engineStyle("Kafka"))
}
