package entity

import "time"

// Profile holds the attributes a user shows on their public profile.
type Profile struct {
	DisplayName string
	Bio         string
	BirthDate   time.Time
	Interests   []string
	City        string
	UpdatedAt   time.Time
}

// Age returns the profile owner's age in whole years at the given time.
func (p *Profile) Age(now time.Time) int {
	years := now.Year() - p.BirthDate.Year()
	anniversary := p.BirthDate.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}
