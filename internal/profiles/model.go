package profiles

import "time"

type Profile struct {
	ID              string    `json:"id"`
	FullName        string    `json:"fullName"`
	Bio             string    `json:"bio"`
	AvatarURL       string    `json:"avatarUrl"`
	JobTitle        string    `json:"jobTitle"`
	YearsExperience int       `json:"yearsExperience"`
	CareerGoals     string    `json:"careerGoals"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Update carries the fields a PUT may change. Nil fields keep their stored value.
type Update struct {
	FullName        *string `json:"fullName"`
	Bio             *string `json:"bio"`
	AvatarURL       *string `json:"avatarUrl"`
	JobTitle        *string `json:"jobTitle"`
	YearsExperience *int    `json:"yearsExperience"`
	CareerGoals     *string `json:"careerGoals"`
}
