package cli

import (
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "minimal valid",
			cfg:  Config{Pattern: "abc"},
		},
		{
			name:    "missing pattern",
			cfg:     Config{},
			wantErr: true,
		},
		{
			name: "inline text",
			cfg:  Config{Pattern: "abc", Text: "abcabc"},
		},
		{
			name:    "inline text with paths",
			cfg:     Config{Pattern: "abc", Text: "abcabc", Paths: []string{"f.txt"}},
			wantErr: true,
		},
		{
			name:    "count and first conflict",
			cfg:     Config{Pattern: "abc", CountOnly: true, FirstOnly: true},
			wantErr: true,
		},
		{
			name:    "first and invert conflict",
			cfg:     Config{Pattern: "abc", FirstOnly: true, Invert: true},
			wantErr: true,
		},
		{
			name:    "first and json conflict",
			cfg:     Config{Pattern: "abc", FirstOnly: true, JSONOutput: true},
			wantErr: true,
		},
		{
			name:    "viz and json conflict",
			cfg:     Config{Pattern: "abc", Viz: true, JSONOutput: true},
			wantErr: true,
		},
		{
			name:    "viz and invert conflict",
			cfg:     Config{Pattern: "abc", Viz: true, Invert: true},
			wantErr: true,
		},
		{
			name: "viz with pacing",
			cfg:  Config{Pattern: "abc", Viz: true, Step: true, Delay: time.Second},
		},
		{
			name:    "step without viz",
			cfg:     Config{Pattern: "abc", Step: true},
			wantErr: true,
		},
		{
			name:    "delay without viz",
			cfg:     Config{Pattern: "abc", Delay: time.Second},
			wantErr: true,
		},
		{
			name:    "negative delay",
			cfg:     Config{Pattern: "abc", Viz: true, Delay: -time.Second},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
