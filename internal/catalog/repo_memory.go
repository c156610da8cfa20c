package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryRepo keeps the catalog in process. Insertion order is kept for OrderCatalog.
type MemoryRepo struct {
	mu          sync.RWMutex
	courses     []Course
	careerPaths []CareerPath
	pathSkills  []CareerPathSkill
	skills      []Skill
	jobs        []JobPosting
	mentors     []Mentor
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) PutCourse(course Course) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}
	for i := range r.courses {
		if r.courses[i].ID == course.ID {
			r.courses[i] = course
			return
		}
	}
	r.courses = append(r.courses, course)
}

func (r *MemoryRepo) DeleteCourse(courseID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.courses = removeWhere(r.courses, func(c Course) bool { return c.ID == courseID })
}

func (r *MemoryRepo) PutCareerPath(path CareerPath, skills ...CareerPathSkill) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if path.CreatedAt.IsZero() {
		path.CreatedAt = time.Now().UTC()
	}
	replaced := false
	for i := range r.careerPaths {
		if r.careerPaths[i].ID == path.ID {
			r.careerPaths[i] = path
			replaced = true
		}
	}
	if !replaced {
		r.careerPaths = append(r.careerPaths, path)
	}
	for _, s := range skills {
		s.CareerPathID = path.ID
		r.pathSkills = append(r.pathSkills, s)
	}
}

func (r *MemoryRepo) DeleteCareerPath(careerPathID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.careerPaths = removeWhere(r.careerPaths, func(p CareerPath) bool { return p.ID == careerPathID })
	r.pathSkills = removeWhere(r.pathSkills, func(s CareerPathSkill) bool { return s.CareerPathID == careerPathID })
}

func (r *MemoryRepo) PutSkill(skill Skill) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if skill.CreatedAt.IsZero() {
		skill.CreatedAt = time.Now().UTC()
	}
	for i := range r.skills {
		if r.skills[i].ID == skill.ID {
			r.skills[i] = skill
			return
		}
	}
	r.skills = append(r.skills, skill)
}

func (r *MemoryRepo) PutJobPosting(job JobPosting) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now().UTC()
	}
	if job.Status == "" {
		job.Status = JobStatusOpen
	}
	for i := range r.jobs {
		if r.jobs[i].ID == job.ID {
			r.jobs[i] = job
			return
		}
	}
	r.jobs = append(r.jobs, job)
}

func (r *MemoryRepo) DeleteJobPosting(jobID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = removeWhere(r.jobs, func(j JobPosting) bool { return j.ID == jobID })
}

func (r *MemoryRepo) PutMentor(mentor Mentor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if mentor.CreatedAt.IsZero() {
		mentor.CreatedAt = time.Now().UTC()
	}
	for i := range r.mentors {
		if r.mentors[i].ID == mentor.ID {
			r.mentors[i] = mentor
			return
		}
	}
	r.mentors = append(r.mentors, mentor)
}

func (r *MemoryRepo) DeleteMentor(mentorID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mentors = removeWhere(r.mentors, func(m Mentor) bool { return m.ID == mentorID })
}

func (r *MemoryRepo) ListCourses(ctx context.Context, opts ListOptions) ([]Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := append([]Course(nil), r.courses...)
	r.mu.RUnlock()
	if opts.Order == OrderNewest {
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return limit(out, opts.Limit), nil
}

func (r *MemoryRepo) GetCourse(ctx context.Context, courseID string) (Course, error) {
	if err := ctx.Err(); err != nil {
		return Course{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.courses {
		if c.ID == courseID {
			return c, nil
		}
	}
	return Course{}, ErrNotFound
}

func (r *MemoryRepo) ListCareerPaths(ctx context.Context, opts ListOptions) ([]CareerPath, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := append([]CareerPath(nil), r.careerPaths...)
	r.mu.RUnlock()
	switch opts.Order {
	case OrderLevel:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Level < out[j].Level })
	case OrderNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return limit(out, opts.Limit), nil
}

func (r *MemoryRepo) GetCareerPath(ctx context.Context, careerPathID string) (CareerPath, error) {
	if err := ctx.Err(); err != nil {
		return CareerPath{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.careerPaths {
		if p.ID == careerPathID {
			return p, nil
		}
	}
	return CareerPath{}, ErrNotFound
}

func (r *MemoryRepo) ListCareerPathSkills(ctx context.Context, careerPathID string) ([]CareerPathSkill, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []CareerPathSkill
	for _, s := range r.pathSkills {
		if s.CareerPathID == careerPathID {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ImportanceLevel > out[j].ImportanceLevel })
	return out, nil
}

func (r *MemoryRepo) ListSkills(ctx context.Context) ([]Skill, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := append([]Skill(nil), r.skills...)
	r.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool { return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name) })
	return out, nil
}

func (r *MemoryRepo) GetSkill(ctx context.Context, skillID string) (Skill, error) {
	if err := ctx.Err(); err != nil {
		return Skill{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.skills {
		if s.ID == skillID {
			return s, nil
		}
	}
	return Skill{}, ErrNotFound
}

func (r *MemoryRepo) ListOpenJobPostings(ctx context.Context) ([]JobPosting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	var out []JobPosting
	for _, j := range r.jobs {
		if j.Status == JobStatusOpen {
			out = append(out, j)
		}
	}
	r.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRepo) GetJobPosting(ctx context.Context, jobID string) (JobPosting, error) {
	if err := ctx.Err(); err != nil {
		return JobPosting{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, j := range r.jobs {
		if j.ID == jobID {
			return j, nil
		}
	}
	return JobPosting{}, ErrNotFound
}

func (r *MemoryRepo) IncrementApplicationsCount(ctx context.Context, jobID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.jobs {
		if r.jobs[i].ID == jobID {
			r.jobs[i].ApplicationsCount++
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryRepo) ListMentors(ctx context.Context, minRating float64, max int) ([]Mentor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	var out []Mentor
	for _, m := range r.mentors {
		if m.Rating >= minRating {
			out = append(out, m)
		}
	}
	r.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	return limit(out, max), nil
}

func (r *MemoryRepo) GetMentor(ctx context.Context, mentorID string) (Mentor, error) {
	if err := ctx.Err(); err != nil {
		return Mentor{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.mentors {
		if m.ID == mentorID {
			return m, nil
		}
	}
	return Mentor{}, ErrNotFound
}

func limit[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}

func removeWhere[T any](items []T, match func(T) bool) []T {
	out := items[:0]
	for _, item := range items {
		if !match(item) {
			out = append(out, item)
		}
	}
	return out
}
