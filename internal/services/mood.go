package services

import "time"

// DailyMood is the rotating inspiration card shown once per day.
type DailyMood struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Tip     string `json:"tip"`
}

var moodCatalog = []DailyMood{
	{
		Title:   "海风恋人",
		Message: "想象一下在柔软沙滩上看星星，让心意被海浪轻轻诉说。",
		Tip:     "挑一个海岛，写下你想和TA做的第一件事。",
	},
	{
		Title:   "城市心跳",
		Message: "夜幕下的霓虹和咖啡香气，是属于两人的都市烟火。",
		Tip:     "在愿望清单里添加一个想尝试的城市体验。",
	},
	{
		Title:   "山谷耳语",
		Message: "去山谷里听风吹过树林，感受世界最温柔的回声。",
		Tip:     "选择一个徒步目的地，计划一个慢节奏的清晨。",
	},
	{
		Title:   "文化漫步",
		Message: "在博物馆或古街散步，让爱情在时光中慢慢生长。",
		Tip:     "挑一座城市，搜集三件想看的艺术珍藏。",
	},
	{
		Title:   "浪漫列车",
		Message: "坐上一列开往未知的列车，把每个窗外风景都存成纪念。",
		Tip:     "在计划里加入一段长途列车或公路旅程。",
	},
}

// MoodOfDay picks the card for a calendar day. The seed is the byte sum of
// the ISO date, so the pick is stable all day and shifts the next.
func MoodOfDay(day time.Time) DailyMood {
	isoDay := day.Format("2006-01-02")
	seed := 0
	for _, char := range isoDay {
		seed += int(char)
	}
	return moodCatalog[seed%len(moodCatalog)]
}
