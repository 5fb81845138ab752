package scoring

import (
	"testing"
	"time"

	"github.com/julianstephens/charlit/internal/models"
)

func TestExtractFeaturesNilInputs(t *testing.T) {
	f := ExtractFeatures(nil, nil)

	if f.HasData {
		t.Error("expected HasData to be false with no inputs")
	}
	if f.HasMood || f.HasCheckIn {
		t.Error("expected self-report flags to be false with no check-in")
	}
	if f.TotalScreenTimeMinutes != 0 || f.Steps != 0 {
		t.Error("expected zeroed features with no inputs")
	}
}

func TestExtractFeaturesUsageOnly(t *testing.T) {
	usage := &models.UsageEntry{
		Date:                  "2026-08-17",
		SocialMediaMinutes:    60,
		ShoppingMinutes:       10,
		EntertainmentMinutes:  120,
		DatingAppsMinutes:     5,
		ProductivityMinutes:   45,
		NewsMinutes:           30,
		GamesMinutes:          20,
		PhonePickups:          80,
		LateNightUsageMinutes: 70,
		Steps:                 2500,
		SleepHours:            6.5,
		WakeTime:              "09:30",
		CreatedAt:             time.Now(),
	}

	f := ExtractFeatures(usage, nil)

	if !f.HasData {
		t.Error("expected HasData with a usage entry")
	}
	if f.HasCheckIn || f.HasMood {
		t.Error("expected no check-in flags with usage only")
	}
	if f.Date != "2026-08-17" {
		t.Errorf("expected date 2026-08-17, got %s", f.Date)
	}

	// 60+10+120+5+45+30+20
	if f.TotalScreenTimeMinutes != 290 {
		t.Errorf("expected total screen time 290, got %v", f.TotalScreenTimeMinutes)
	}
	// entertainment + social + news
	if f.PassiveConsumptionMinutes != 210 {
		t.Errorf("expected passive consumption 210, got %v", f.PassiveConsumptionMinutes)
	}
	if f.WakeTimeHour != 9 {
		t.Errorf("expected wake hour 9, got %v", f.WakeTimeHour)
	}

	if !f.IsLowActivity {
		t.Error("expected IsLowActivity at 2500 steps")
	}
	if f.IsHighScreenTime {
		t.Error("did not expect IsHighScreenTime at 290 minutes")
	}
	if !f.IsLateWake {
		t.Error("expected IsLateWake at 09:30")
	}
	if !f.IsHighLateNight {
		t.Error("expected IsHighLateNight at 70 minutes")
	}
}

func TestExtractFeaturesCheckInOnly(t *testing.T) {
	checkIn := &models.CheckIn{
		ID:           "checkin-1",
		Date:         "2026-08-17",
		MoodScore:    4,
		PrimaryTheme: models.ThemeSloth,
		CreatedAt:    time.Now(),
	}

	f := ExtractFeatures(nil, checkIn)

	if !f.HasData || !f.HasCheckIn || !f.HasMood {
		t.Error("expected data, check-in, and mood flags with a check-in")
	}
	if f.Date != "2026-08-17" {
		t.Errorf("expected date from check-in, got %s", f.Date)
	}
	if f.MoodScore != 4 {
		t.Errorf("expected mood score 4, got %v", f.MoodScore)
	}
	if f.PrimaryTheme != models.ThemeSloth {
		t.Errorf("expected primary theme sloth, got %s", f.PrimaryTheme)
	}
}

func TestExtractFeaturesBothInputs(t *testing.T) {
	usage := &models.UsageEntry{Date: "2026-08-18", Steps: 9000, SleepHours: 7.5}
	checkIn := &models.CheckIn{Date: "2026-08-18", MoodScore: 8, PrimaryTheme: models.ThemePride}

	f := ExtractFeatures(usage, checkIn)

	if !f.HasData || !f.HasCheckIn {
		t.Error("expected data and check-in flags with both inputs")
	}
	if f.IsLowActivity {
		t.Error("did not expect IsLowActivity at 9000 steps")
	}
	if f.MoodScore != 8 {
		t.Errorf("expected mood score 8, got %v", f.MoodScore)
	}
}

func TestParseWakeHour(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"07:30", 7},
		{"23:59", 23},
		{"0:05", 0},
		{"", 0},
		{"not-a-time", 0},
		{"25:00", 0},
		{"-1:00", 0},
	}

	for _, c := range cases {
		if got := parseWakeHour(c.in); got != c.want {
			t.Errorf("parseWakeHour(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
