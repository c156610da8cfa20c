package catalog

import "time"

// SeedDemo fills an in-memory catalog with a small fixed data set for local runs.
func SeedDemo(r *MemoryRepo) {
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	at := func(days int) time.Time { return base.AddDate(0, 0, days) }

	skills := []Skill{
		{ID: "skill-go", Name: "Go", Category: "programming"},
		{ID: "skill-sql", Name: "SQL", Category: "data"},
		{ID: "skill-k8s", Name: "Kubernetes", Category: "infrastructure"},
		{ID: "skill-react", Name: "React", Category: "frontend"},
		{ID: "skill-ml", Name: "Machine Learning", Category: "data"},
		{ID: "skill-comm", Name: "Communication", Category: "soft"},
	}
	for i, s := range skills {
		s.CreatedAt = at(i)
		r.PutSkill(s)
	}

	courses := []Course{
		{ID: "course-go-fundamentals", Title: "Go Fundamentals", Description: "Types, interfaces and concurrency basics.", DifficultyLevel: "beginner", DurationHours: 12, Provider: "SkillPath", Category: "programming"},
		{ID: "course-sql-analytics", Title: "SQL for Analytics", Description: "Joins, windows and query plans.", DifficultyLevel: "intermediate", DurationHours: 10, Provider: "SkillPath", Category: "data"},
		{ID: "course-k8s-ops", Title: "Kubernetes Operations", Description: "Running services on Kubernetes.", DifficultyLevel: "advanced", DurationHours: 18, Provider: "CloudAcademy", Category: "infrastructure"},
		{ID: "course-react-ui", Title: "Modern React", Description: "Hooks, state and component design.", DifficultyLevel: "intermediate", DurationHours: 14, Provider: "FrontendLab", Category: "frontend"},
		{ID: "course-ml-intro", Title: "Intro to Machine Learning", Description: "Regression, classification and evaluation.", DifficultyLevel: "beginner", DurationHours: 20, Provider: "DataSchool", Category: "data"},
	}
	for i, c := range courses {
		c.CreatedAt = at(10 + i)
		r.PutCourse(c)
	}

	r.PutCareerPath(CareerPath{
		ID: "path-backend", Title: "Backend Engineer", Description: "Design and run APIs and data stores.",
		Level: "mid", EstimatedDurationMonths: 9, AverageSalaryRange: "$90k-$140k", CreatedAt: at(20),
	},
		CareerPathSkill{ImportanceLevel: 5, Skill: skills[0]},
		CareerPathSkill{ImportanceLevel: 4, Skill: skills[1]},
		CareerPathSkill{ImportanceLevel: 3, Skill: skills[2]},
	)
	r.PutCareerPath(CareerPath{
		ID: "path-data", Title: "Data Scientist", Description: "Turn data into models and decisions.",
		Level: "entry", EstimatedDurationMonths: 12, AverageSalaryRange: "$85k-$130k", CreatedAt: at(21),
	},
		CareerPathSkill{ImportanceLevel: 5, Skill: skills[4]},
		CareerPathSkill{ImportanceLevel: 4, Skill: skills[1]},
	)
	r.PutCareerPath(CareerPath{
		ID: "path-frontend", Title: "Frontend Engineer", Description: "Build accessible product interfaces.",
		Level: "entry", EstimatedDurationMonths: 6, AverageSalaryRange: "$75k-$120k", CreatedAt: at(22),
	},
		CareerPathSkill{ImportanceLevel: 5, Skill: skills[3]},
		CareerPathSkill{ImportanceLevel: 2, Skill: skills[5]},
	)

	salary := func(v int) *int { return &v }
	jobs := []JobPosting{
		{ID: "job-platform", RecruiterID: "recruiter-1", CompanyName: "Acme Cloud", Industry: "software", Title: "Platform Engineer", Description: "Own our Go services and Kubernetes clusters.", Location: "Berlin", JobType: "full_time", ExperienceLevel: "mid", SalaryMin: salary(80000), SalaryMax: salary(110000), RemoteAllowed: true},
		{ID: "job-analyst", RecruiterID: "recruiter-2", CompanyName: "Datawise", Industry: "analytics", Title: "Data Analyst", Description: "SQL heavy reporting and dashboards.", Location: "London", JobType: "full_time", ExperienceLevel: "entry"},
		{ID: "job-frontend-intern", RecruiterID: "recruiter-1", CompanyName: "Acme Cloud", Industry: "software", Title: "Frontend Intern", Description: "React work on the console.", Location: "Remote", JobType: "internship", ExperienceLevel: "entry", RemoteAllowed: true},
	}
	for i, j := range jobs {
		j.CreatedAt = at(30 + i)
		r.PutJobPosting(j)
	}

	mentors := []Mentor{
		{ID: "mentor-ana", UserID: "educator-ana", FullName: "Ana Petrova", JobTitle: "Staff Engineer", ExpertiseAreas: []string{"Go", "Distributed Systems"}, TeachingExperienceYears: 8, HourlyRate: 90, Rating: 4.9, TotalStudents: 120, Bio: "Backend mentor."},
		{ID: "mentor-li", UserID: "educator-li", FullName: "Li Wei", JobTitle: "Data Science Lead", ExpertiseAreas: []string{"Machine Learning", "SQL"}, TeachingExperienceYears: 6, HourlyRate: 80, Rating: 4.6, TotalStudents: 75, Bio: "Data mentor."},
		{ID: "mentor-sam", UserID: "educator-sam", FullName: "Sam Okafor", JobTitle: "Frontend Engineer", ExpertiseAreas: []string{"React"}, TeachingExperienceYears: 2, HourlyRate: 40, Rating: 3.2, TotalStudents: 10, Bio: "Frontend mentor."},
	}
	for i, m := range mentors {
		m.CreatedAt = at(40 + i)
		r.PutMentor(m)
	}
}
