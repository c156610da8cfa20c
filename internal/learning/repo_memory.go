package learning

import (
	"context"
	"sort"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu      sync.RWMutex
	skills  map[string]UserSkill
	courses map[string]UserCourse
	goals   map[string]CareerGoal
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		skills:  make(map[string]UserSkill),
		courses: make(map[string]UserCourse),
		goals:   make(map[string]CareerGoal),
	}
}

func (r *MemoryRepo) ListUserSkills(ctx context.Context, userID string) ([]UserSkill, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []UserSkill
	for _, s := range r.skills {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) CreateUserSkill(ctx context.Context, skill UserSkill) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.skills {
		if existing.UserID == skill.UserID && existing.SkillID == skill.SkillID {
			return ErrConflict
		}
	}
	r.skills[skill.ID] = skill
	return nil
}

func (r *MemoryRepo) UpdateUserSkillLevel(ctx context.Context, userID, userSkillID string, level int, updatedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	skill, ok := r.skills[userSkillID]
	if !ok || skill.UserID != userID {
		return ErrNotFound
	}
	skill.ProficiencyLevel = level
	skill.UpdatedAt = updatedAt
	r.skills[userSkillID] = skill
	return nil
}

func (r *MemoryRepo) DeleteUserSkill(ctx context.Context, userID, userSkillID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	skill, ok := r.skills[userSkillID]
	if !ok || skill.UserID != userID {
		return ErrNotFound
	}
	delete(r.skills, userSkillID)
	return nil
}

func (r *MemoryRepo) ListUserCourses(ctx context.Context, userID string) ([]UserCourse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []UserCourse
	for _, c := range r.courses {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) GetUserCourse(ctx context.Context, userID, userCourseID string) (UserCourse, error) {
	if err := ctx.Err(); err != nil {
		return UserCourse{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	course, ok := r.courses[userCourseID]
	if !ok || course.UserID != userID {
		return UserCourse{}, ErrNotFound
	}
	return course, nil
}

func (r *MemoryRepo) CreateUserCourse(ctx context.Context, course UserCourse) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.courses {
		if existing.UserID == course.UserID && existing.CourseID == course.CourseID {
			return ErrConflict
		}
	}
	r.courses[course.ID] = course
	return nil
}

func (r *MemoryRepo) UpdateUserCourse(ctx context.Context, course UserCourse) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.courses[course.ID]
	if !ok || existing.UserID != course.UserID {
		return ErrNotFound
	}
	existing.Status = course.Status
	existing.ProgressPercentage = course.ProgressPercentage
	existing.CompletedAt = course.CompletedAt
	r.courses[course.ID] = existing
	return nil
}

func (r *MemoryRepo) ListCareerGoals(ctx context.Context, userID, status string) ([]CareerGoal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []CareerGoal
	for _, g := range r.goals {
		if g.UserID == userID && (status == "" || g.Status == status) {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) CreateCareerGoal(ctx context.Context, goal CareerGoal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.goals {
		if existing.UserID == goal.UserID && existing.CareerPathID == goal.CareerPathID && existing.Status == GoalStatusActive {
			return ErrConflict
		}
	}
	r.goals[goal.ID] = goal
	return nil
}

// ClaimGuest re-owns a guest's rows. Rows the user already has an equivalent
// of stay with the guest.
func (r *MemoryRepo) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	moved := map[string]int{}

	ownedSkills := map[string]bool{}
	for _, s := range r.skills {
		if s.UserID == authedUserID {
			ownedSkills[s.SkillID] = true
		}
	}
	for id, s := range r.skills {
		if s.UserID == guestUserID && !ownedSkills[s.SkillID] {
			s.UserID = authedUserID
			r.skills[id] = s
			moved["user_skills"]++
		}
	}

	ownedCourses := map[string]bool{}
	for _, c := range r.courses {
		if c.UserID == authedUserID {
			ownedCourses[c.CourseID] = true
		}
	}
	for id, c := range r.courses {
		if c.UserID == guestUserID && !ownedCourses[c.CourseID] {
			c.UserID = authedUserID
			r.courses[id] = c
			moved["user_courses"]++
		}
	}

	activeGoals := map[string]bool{}
	for _, g := range r.goals {
		if g.UserID == authedUserID && g.Status == GoalStatusActive {
			activeGoals[g.CareerPathID] = true
		}
	}
	for id, g := range r.goals {
		if g.UserID != guestUserID || (g.Status == GoalStatusActive && activeGoals[g.CareerPathID]) {
			continue
		}
		g.UserID = authedUserID
		r.goals[id] = g
		moved["user_career_goals"]++
	}
	return moved, nil
}
