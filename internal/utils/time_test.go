package utils

import (
	"testing"
	"time"
)

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{
			name:     "empty string returns local",
			timezone: "",
			wantErr:  false,
		},
		{
			name:     "Local returns local",
			timezone: "Local",
			wantErr:  false,
		},
		{
			name:     "valid timezone UTC",
			timezone: "UTC",
			wantErr:  false,
		},
		{
			name:     "valid timezone America/New_York",
			timezone: "America/New_York",
			wantErr:  false,
		},
		{
			name:     "invalid timezone",
			timezone: "Invalid/Timezone",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadLocation() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("LoadLocation() returned nil location without error")
			}
		})
	}
}

func TestParseTimeToMinutes(t *testing.T) {
	tests := []struct {
		name    string
		timeStr string
		want    int
		wantErr bool
	}{
		{
			name:    "midnight",
			timeStr: "00:00",
			want:    0,
		},
		{
			name:    "morning",
			timeStr: "09:30",
			want:    570,
		},
		{
			name:    "end of day",
			timeStr: "23:59",
			want:    1439,
		},
		{
			name:    "invalid",
			timeStr: "25:00",
			wantErr: true,
		},
		{
			name:    "empty",
			timeStr: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeToMinutes(tt.timeStr)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseTimeToMinutes() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseTimeToMinutes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		n       int
		want    string
		wantErr bool
	}{
		{
			name: "add zero",
			date: "2024-05-01",
			n:    0,
			want: "2024-05-01",
		},
		{
			name: "cross month boundary",
			date: "2024-05-30",
			n:    3,
			want: "2024-06-02",
		},
		{
			name: "leap day",
			date: "2024-02-28",
			n:    1,
			want: "2024-02-29",
		},
		{
			name: "negative",
			date: "2024-05-01",
			n:    -1,
			want: "2024-04-30",
		},
		{
			name:    "invalid date",
			date:    "2024/05/01",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddDays(tt.date, tt.n)
			if (err != nil) != tt.wantErr {
				t.Errorf("AddDays() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("AddDays() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{
			name: "same day",
			a:    "2024-05-01",
			b:    "2024-05-01",
			want: 0,
		},
		{
			name: "forward",
			a:    "2024-05-01",
			b:    "2024-05-08",
			want: 7,
		},
		{
			name: "backward",
			a:    "2024-05-08",
			b:    "2024-05-01",
			want: -7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DaysBetween(tt.a, tt.b)
			if err != nil {
				t.Fatalf("DaysBetween() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCombineDateAndTime(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		time    string
		wantErr bool
	}{
		{
			name: "valid combination",
			date: "2024-05-01",
			time: "14:30",
		},
		{
			name:    "invalid date",
			date:    "05-01-2024",
			time:    "14:30",
			wantErr: true,
		},
		{
			name:    "invalid time",
			date:    "2024-05-01",
			time:    "2pm",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CombineDateAndTime(tt.date, tt.time, time.UTC)
			if (err != nil) != tt.wantErr {
				t.Errorf("CombineDateAndTime() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				if got.Hour() != 14 || got.Minute() != 30 {
					t.Errorf("CombineDateAndTime() time = %02d:%02d, want 14:30", got.Hour(), got.Minute())
				}
				if got.Location() != time.UTC {
					t.Errorf("CombineDateAndTime() location = %v, want UTC", got.Location())
				}
			}
		})
	}
}

func TestValidateTimezone(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		want     bool
	}{
		{
			name:     "empty is valid",
			timezone: "",
			want:     true,
		},
		{
			name:     "Local is valid",
			timezone: "Local",
			want:     true,
		},
		{
			name:     "UTC is valid",
			timezone: "UTC",
			want:     true,
		},
		{
			name:     "garbage is invalid",
			timezone: "Not/AZone",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateTimezone(tt.timezone); got != tt.want {
				t.Errorf("ValidateTimezone(%q) = %v, want %v", tt.timezone, got, tt.want)
			}
		})
	}
}
