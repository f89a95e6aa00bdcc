package service

import (
	"math/rand/v2"

	"github.com/MKhiriev/ar-fit/internal/config"
	"github.com/MKhiriev/ar-fit/internal/store"
	"github.com/MKhiriev/ar-fit/models"
)

// Number of tasks drawn per category for a fresh day.
const (
	strengthPerDay    = 2
	cardioPerDay      = 2
	flexibilityPerDay = 1
)

type exercise struct {
	title       string
	description string
}

// exerciseCatalog holds the localized exercises per category. Every
// language carries the same number of entries per category.
var exerciseCatalog = map[string]map[models.TaskCategory][]exercise{
	config.LanguageEnglish: {
		models.CategoryStrength: {
			{"Push-ups", "3 sets of 12 push-ups"},
			{"Squats", "3 sets of 15 bodyweight squats"},
			{"Lunges", "3 sets of 10 lunges per leg"},
			{"Plank", "Hold a plank for 60 seconds, 3 times"},
			{"Glute bridges", "3 sets of 15 glute bridges"},
		},
		models.CategoryCardio: {
			{"Brisk walk", "Walk briskly for 30 minutes"},
			{"Jumping jacks", "4 rounds of 50 jumping jacks"},
			{"Jogging", "Jog for 20 minutes at an easy pace"},
			{"Stair climbing", "Climb stairs for 10 minutes"},
			{"Jump rope", "5 rounds of 1 minute of jump rope"},
		},
		models.CategoryFlexibility: {
			{"Hamstring stretch", "Hold each side for 30 seconds, 3 times"},
			{"Cat-cow", "10 slow cat-cow cycles"},
			{"Shoulder rolls", "2 sets of 15 rolls each direction"},
			{"Child's pose", "Rest in child's pose for 2 minutes"},
		},
	},
	config.LanguageArabic: {
		models.CategoryStrength: {
			{"تمارين الضغط", "3 مجموعات من 12 تمرين ضغط"},
			{"القرفصاء", "3 مجموعات من 15 قرفصاء بوزن الجسم"},
			{"الطعنات", "3 مجموعات من 10 طعنات لكل رجل"},
			{"تمرين البلانك", "الثبات في وضع البلانك 60 ثانية، 3 مرات"},
			{"جسر الأرداف", "3 مجموعات من 15 تكرار لجسر الأرداف"},
		},
		models.CategoryCardio: {
			{"المشي السريع", "المشي بسرعة لمدة 30 دقيقة"},
			{"القفز مع فتح اليدين", "4 جولات من 50 قفزة"},
			{"الهرولة", "الهرولة لمدة 20 دقيقة بوتيرة مريحة"},
			{"صعود الدرج", "صعود الدرج لمدة 10 دقائق"},
			{"نط الحبل", "5 جولات من دقيقة واحدة لنط الحبل"},
		},
		models.CategoryFlexibility: {
			{"إطالة أوتار الركبة", "الثبات 30 ثانية لكل جانب، 3 مرات"},
			{"تمرين القطة والبقرة", "10 دورات بطيئة"},
			{"تدوير الكتفين", "مجموعتان من 15 دورة في كل اتجاه"},
			{"وضعية الطفل", "الاسترخاء في وضعية الطفل لمدة دقيقتين"},
		},
	},
}

// GenerateTasks draws a fresh day of tasks: two strength, two cardio and
// one flexibility exercise, picked with replacement and shuffled. Unknown
// languages fall back to English.
func GenerateTasks(lang string, rnd *rand.Rand, ids store.IDGenerator) []models.DailyTask {
	catalog, ok := exerciseCatalog[lang]
	if !ok {
		catalog = exerciseCatalog[config.LanguageEnglish]
	}

	tasks := make([]models.DailyTask, 0, strengthPerDay+cardioPerDay+flexibilityPerDay)
	draw := func(category models.TaskCategory, n int) {
		entries := catalog[category]
		for range n {
			e := entries[rnd.IntN(len(entries))]
			tasks = append(tasks, models.DailyTask{
				ID:          ids.Generate(),
				Title:       e.title,
				Description: e.description,
				Category:    category,
			})
		}
	}

	draw(models.CategoryStrength, strengthPerDay)
	draw(models.CategoryCardio, cardioPerDay)
	draw(models.CategoryFlexibility, flexibilityPerDay)

	rnd.Shuffle(len(tasks), func(i, j int) { tasks[i], tasks[j] = tasks[j], tasks[i] })
	return tasks
}
