package main

import "testing"

func TestExportPath(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		override  string
		listTitle string
		expected  string
		expectErr bool
	}{
		{
			name:      "csv derived from list title",
			format:    "csv",
			listTitle: "RA4-1 Solicitud para Viajes",
			expected:  "RA4-1_Solicitud_para_Viajes.csv",
		},
		{
			name:      "parquet derived from list title",
			format:    "parquet",
			listTitle: "RA4-1 Solicitud para Viajes",
			expected:  "RA4-1_Solicitud_para_Viajes.parquet",
		},
		{
			name:      "override wins",
			format:    "csv",
			override:  "/tmp/custom.csv",
			listTitle: "Tasks",
			expected:  "/tmp/custom.csv",
		},
		{
			name:      "unknown format",
			format:    "xlsx",
			listTitle: "Tasks",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := exportPath(tt.format, tt.override, tt.listTitle)

			if tt.expectErr {
				if err == nil {
					t.Error("Expected error for unknown format")
				}
				return
			}
			if err != nil {
				t.Fatalf("exportPath() unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("exportPath() = %q, want %q", got, tt.expected)
			}
		})
	}
}
