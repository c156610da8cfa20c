package catalog

import "time"

// Course is a catalog course.
type Course struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DifficultyLevel string    `json:"difficultyLevel"`
	DurationHours   int       `json:"durationHours"`
	ThumbnailURL    string    `json:"thumbnailUrl"`
	Provider        string    `json:"provider"`
	Category        string    `json:"category"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CareerPath is a catalog career path.
type CareerPath struct {
	ID                      string    `json:"id"`
	Title                   string    `json:"title"`
	Description             string    `json:"description"`
	Level                   string    `json:"level"`
	EstimatedDurationMonths int       `json:"estimatedDurationMonths"`
	AverageSalaryRange      string    `json:"averageSalaryRange"`
	CreatedAt               time.Time `json:"createdAt"`
}

// Skill is a catalog skill.
type Skill struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CareerPathSkill links a skill to a career path with an importance weight.
type CareerPathSkill struct {
	CareerPathID    string `json:"careerPathId"`
	ImportanceLevel int    `json:"importanceLevel"`
	Skill           Skill  `json:"skill"`
}

// JobPosting is an open or closed job listing.
type JobPosting struct {
	ID                  string     `json:"id"`
	RecruiterID         string     `json:"recruiterId"`
	CompanyName         string     `json:"companyName"`
	Industry            string     `json:"industry"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Location            string     `json:"location"`
	JobType             string     `json:"jobType"`
	ExperienceLevel     string     `json:"experienceLevel"`
	SalaryMin           *int       `json:"salaryMin,omitempty"`
	SalaryMax           *int       `json:"salaryMax,omitempty"`
	RemoteAllowed       bool       `json:"remoteAllowed"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
	Status              string     `json:"status"`
	ApplicationsCount   int        `json:"applicationsCount"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// Mentor is an educator profile offering mentorship.
type Mentor struct {
	ID                      string    `json:"id"`
	UserID                  string    `json:"userId"`
	FullName                string    `json:"fullName"`
	JobTitle                string    `json:"jobTitle"`
	ExpertiseAreas          []string  `json:"expertiseAreas"`
	TeachingExperienceYears int       `json:"teachingExperienceYears"`
	HourlyRate              float64   `json:"hourlyRate"`
	Rating                  float64   `json:"rating"`
	TotalStudents           int       `json:"totalStudents"`
	Bio                     string    `json:"bio"`
	CreatedAt               time.Time `json:"createdAt"`
}

const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
)
