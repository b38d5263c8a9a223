package config

import (
	"testing"
	"time"
)

func TestValidateDurationRange(t *testing.T) {
	tests := []struct {
		name     string
		d        time.Duration
		min, max time.Duration
		wantErr  bool
	}{
		{name: "within range", d: 30 * time.Second, min: time.Second, max: time.Minute, wantErr: false},
		{name: "at minimum", d: time.Second, min: time.Second, max: time.Minute, wantErr: false},
		{name: "at maximum", d: time.Minute, min: time.Second, max: time.Minute, wantErr: false},
		{name: "below minimum", d: 500 * time.Millisecond, min: time.Second, max: time.Minute, wantErr: true},
		{name: "above maximum", d: 2 * time.Minute, min: time.Second, max: time.Minute, wantErr: true},
		{name: "inverted range", d: 30 * time.Second, min: time.Minute, max: time.Second, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDurationRange(tt.d, tt.min, tt.max)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDurationRange(%v, %v, %v) error = %v, wantErr %v",
					tt.d, tt.min, tt.max, err, tt.wantErr)
			}
		})
	}
}
