package feedback

import "github.com/abhisek/plantquiz/internal/quiz"

// DefaultPools returns the per-category reaction strings.
func DefaultPools() map[quiz.Category][]string {
	return map[quiz.Category][]string{
		quiz.Lavender: {
			"🌙 You need more quiet moments",
			"✨ Your inner voice is calling",
			"🍃 That stillness is precious",
			"💜 Give yourself a little more space",
		},
		quiz.Cypress: {
			"🌲 Your pace is steady",
			"🏔️ That groundedness feels safe",
			"🌿 Take it slow, you're doing well",
			"🧭 You know where you're headed",
		},
		quiz.Hinoki: {
			"🌳 Your warmth heals the people around you",
			"☀️ That sense of harmony feels good",
			"🍂 Steady, and full of strength",
			"🌾 Your presence puts people at ease",
		},
		quiz.Chamomile: {
			"🌼 Your gentleness has been noticed",
			"🫖 That kind of care is moving",
			"💛 You always think of others",
			"🌸 You deserve to be treated well",
		},
		quiz.Mint: {
			"⚡ You get things moving",
			"🌱 That efficiency is admirable",
			"💚 You always find a way, fast",
			"🍀 Your energy is crystal clear",
		},
		quiz.Peony: {
			"🌺 Your light is starting to bloom",
			"✨ That passion is moving",
			"💗 Your energy is contagious",
			"🔥 You deserve to be seen",
		},
	}
}

// DefaultEncouragements returns the category-agnostic fallback strings.
func DefaultEncouragements() []string {
	return []string{
		"Keep exploring inward ✨",
		"You're getting to know yourself 🌱",
		"Every answer is a precious clue 💫",
		"Great, stay true to how you feel 🌿",
		"Your honest answers matter 💚",
	}
}

// DefaultInsights returns stage insights keyed by 1-based question number.
func DefaultInsights() map[int]string {
	return map[int]string{
		3: "💭 Your emotional outline is taking shape...",
		6: "🧭 We're getting closer to your coordinates",
		9: "🌟 One last step before your plant is revealed",
	}
}
