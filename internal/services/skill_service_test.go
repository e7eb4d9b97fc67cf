package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/greapevine/collaborator-finder/internal/models"
	"github.com/greapevine/collaborator-finder/internal/repository"
)

func setupSkillServiceTest(t *testing.T) (*SkillService, *models.User) {
	t.Helper()

	db := newTestDB(t)
	service := NewSkillService(repository.NewSkillRepository(db))
	user := createTestUser(t, db, "skilluser")
	return service, user
}

func TestSkillService_AddSkill(t *testing.T) {
	service, user := setupSkillServiceTest(t)

	userSkill, err := service.AddSkill(AddSkillInput{
		UserID:    user.ID,
		SkillName: "go",
		Level:     models.SkillLevelExpert,
	})
	require.NoError(t, err)
	require.Equal(t, "go", userSkill.Skill.Name)
	require.Equal(t, models.SkillLevelExpert, userSkill.Level)

	skills, err := service.ListSkills(user.ID)
	require.NoError(t, err)
	require.Len(t, skills, 1)
}

func TestSkillService_AddSkill_UnsupportedSkill(t *testing.T) {
	service, user := setupSkillServiceTest(t)

	_, err := service.AddSkill(AddSkillInput{
		UserID:    user.ID,
		SkillName: "cobol",
		Level:     models.SkillLevelBeginner,
	})
	require.ErrorIs(t, err, ErrInvalidSkill)
}

func TestSkillService_AddSkill_InvalidLevel(t *testing.T) {
	service, user := setupSkillServiceTest(t)

	_, err := service.AddSkill(AddSkillInput{
		UserID:    user.ID,
		SkillName: "py",
		Level:     models.SkillLevel("guru"),
	})
	require.ErrorIs(t, err, ErrInvalidSkillLevel)
}

func TestSkillService_AddSkill_Duplicate(t *testing.T) {
	service, user := setupSkillServiceTest(t)

	_, err := service.AddSkill(AddSkillInput{
		UserID:    user.ID,
		SkillName: "rust",
		Level:     models.SkillLevelBeginner,
	})
	require.NoError(t, err)

	// Same skill again, even with a different level
	_, err = service.AddSkill(AddSkillInput{
		UserID:    user.ID,
		SkillName: "rust",
		Level:     models.SkillLevelExpert,
	})
	require.ErrorIs(t, err, ErrDuplicateSkill)

	skills, err := service.ListSkills(user.ID)
	require.NoError(t, err)
	require.Len(t, skills, 1)
}

func TestSkillService_AddSkill_LimitExceeded(t *testing.T) {
	service, user := setupSkillServiceTest(t)

	for _, name := range []string{"go", "py", "js"} {
		_, err := service.AddSkill(AddSkillInput{
			UserID:    user.ID,
			SkillName: name,
			Level:     models.SkillLevelExperienced,
		})
		require.NoError(t, err)
	}

	_, err := service.AddSkill(AddSkillInput{
		UserID:    user.ID,
		SkillName: "java",
		Level:     models.SkillLevelExperienced,
	})
	require.ErrorIs(t, err, ErrSkillLimitExceeded)
}

func TestSkillService_RemoveSkill(t *testing.T) {
	service, user := setupSkillServiceTest(t)

	_, err := service.AddSkill(AddSkillInput{
		UserID:    user.ID,
		SkillName: "lua",
		Level:     models.SkillLevelBeginner,
	})
	require.NoError(t, err)

	require.NoError(t, service.RemoveSkill(user.ID, "lua"))

	// Removing again fails; removal never silently succeeds twice
	require.ErrorIs(t, service.RemoveSkill(user.ID, "lua"), ErrSkillNotFound)
}

func TestSkillService_RemoveSkill_NeverHeld(t *testing.T) {
	service, user := setupSkillServiceTest(t)

	require.ErrorIs(t, service.RemoveSkill(user.ID, "julia"), ErrSkillNotFound)
}

func TestSkillService_AddSkill_ConcurrentCap(t *testing.T) {
	service, user := setupSkillServiceTest(t)

	for _, name := range []string{"go", "py"} {
		_, err := service.AddSkill(AddSkillInput{
			UserID:    user.ID,
			SkillName: name,
			Level:     models.SkillLevelBeginner,
		})
		require.NoError(t, err)
	}

	// One seat left in the skill set; racing adds must not push past 3.
	candidates := []string{"js", "java", "rust"}
	errs := make([]error, len(candidates))

	var wg sync.WaitGroup
	for i, name := range candidates {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			_, errs[i] = service.AddSkill(AddSkillInput{
				UserID:    user.ID,
				SkillName: name,
				Level:     models.SkillLevelBeginner,
			})
		}(i, name)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		}
	}
	require.LessOrEqual(t, successes, 1)

	skills, err := service.ListSkills(user.ID)
	require.NoError(t, err)
	require.Len(t, skills, 2+successes)
	require.LessOrEqual(t, len(skills), 3)
}
