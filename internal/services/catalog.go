package services

import "github.com/wanderpair/wanderpair/internal/models"

// CategoryAll is the sentinel category meaning "no category filter".
const CategoryAll = "全部"

// Categories lists the filterable destination categories, CategoryAll first.
var Categories = []string{
	CategoryAll,
	"现代都市",
	"浪漫城市",
	"艺术建筑",
	"自然风光",
	"徒步路线",
}

// baseCatalog is the immutable seed dataset every fresh workspace starts
// from. Live state is always a deep clone of it, never the slice itself.
var baseCatalog = []models.Destination{
	{ID: 1, Name: "巴黎", Country: "法国", Coordinates: [2]float64{48.8566, 2.3522}, Category: "浪漫城市", Description: "塞纳河畔的浪漫之都，左岸咖啡和铁塔灯光。", BestTime: "4-6月", Image: "/images/paris.jpg"},
	{ID: 2, Name: "京都", Country: "日本", Coordinates: [2]float64{35.0116, 135.7681}, Category: "艺术建筑", Description: "古寺、枫叶与石板小路里的旧时光。", BestTime: "3-4月, 11月", Image: "/images/kyoto.jpg"},
	{ID: 3, Name: "圣托里尼", Country: "希腊", Coordinates: [2]float64{36.3932, 25.4615}, Category: "浪漫城市", Description: "蓝顶白墙之间看一场爱琴海日落。", BestTime: "5-10月", Image: "/images/santorini.jpg"},
	{ID: 4, Name: "东京", Country: "日本", Coordinates: [2]float64{35.6895, 139.6917}, Category: "现代都市", Description: "霓虹、深夜食堂和转角的神社。", BestTime: "3-5月, 9-11月", Image: "/images/tokyo.jpg"},
	{ID: 5, Name: "因特拉肯", Country: "瑞士", Coordinates: [2]float64{46.6863, 7.8632}, Category: "自然风光", Description: "两湖之间的小镇，抬头就是少女峰。", BestTime: "6-9月", Image: "/images/interlaken.jpg"},
	{ID: 6, Name: "皇后镇", Country: "新西兰", Coordinates: [2]float64{-45.0312, 168.6626}, Category: "徒步路线", Description: "雪山湖泊环绕的户外天堂。", BestTime: "12-2月", Image: "/images/queenstown.jpg"},
	{ID: 7, Name: "雷克雅未克", Country: "冰岛", Coordinates: [2]float64{64.1466, -21.9426}, Category: "自然风光", Description: "追极光、泡温泉，世界尽头的安静小城。", BestTime: "6-8月, 11-2月", Image: "/images/reykjavik.jpg"},
	{ID: 8, Name: "新加坡", Country: "新加坡", Coordinates: [2]float64{1.3521, 103.8198}, Category: "现代都市", Description: "花园城市的夜景与无休止的美食。", BestTime: "2-4月", Image: "/images/singapore.jpg"},
	{ID: 9, Name: "五渔村", Country: "意大利", Coordinates: [2]float64{44.1461, 9.6439}, Category: "徒步路线", Description: "沿着悬崖步道串起五座彩色渔村。", BestTime: "4-10月", Image: "/images/cinqueterre.jpg"},
	{ID: 10, Name: "布拉格", Country: "捷克", Coordinates: [2]float64{50.0755, 14.4378}, Category: "艺术建筑", Description: "查理大桥的晨雾和老城广场的钟声。", BestTime: "4-5月, 9-10月", Image: "/images/prague.jpg"},
	{ID: 11, Name: "马尔代夫", Country: "马尔代夫", Coordinates: [2]float64{3.2028, 73.2207}, Category: "浪漫城市", Description: "水上屋与透明的浅海，什么都不做也很好。", BestTime: "11-4月", Image: "/images/maldives.jpg"},
	{ID: 12, Name: "罗弗敦群岛", Country: "挪威", Coordinates: [2]float64{68.209, 13.636}, Category: "自然风光", Description: "北极圈里的渔村，峡湾和午夜阳光。", BestTime: "11-2月", Image: "/images/lofoten.jpg"},
}

// BaseDestinations returns a deep clone of the seed catalog.
func BaseDestinations() []models.Destination {
	return models.CloneDestinations(baseCatalog)
}

// BaseDestinationIDs returns the set of seed ids, used by the legacy-state
// merge and by the custom-destination achievement extractor.
func BaseDestinationIDs() map[int]bool {
	ids := make(map[int]bool, len(baseCatalog))
	for _, destination := range baseCatalog {
		ids[destination.ID] = true
	}
	return ids
}
