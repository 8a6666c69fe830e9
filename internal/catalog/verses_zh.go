package catalog

// Simplified Chinese New Testament citations eligible for generation.
var versesZH = []string{
	"以弗所书 1:11", "以弗所书 1:7", "以弗所书 2:19-20", "以弗所书 2:4-5",
	"以弗所书 3:16", "以弗所书 3:18-19", "以弗所书 3:20", "以弗所书 4:1",
	"以弗所书 4:15", "以弗所书 5:16", "以弗所书 5:18", "以弗所书 5:2",
	"以弗所书 6:10", "以弗所书 6:11", "以弗所书 6:12", "使徒行传 10:34-35",
	"使徒行传 10:38", "使徒行传 10:43", "使徒行传 13:38-39", "使徒行传 16:30",
	"使徒行传 16:31", "使徒行传 17:11", "使徒行传 1:5", "使徒行传 20:24",
	"使徒行传 26:18", "使徒行传 2:21", "使徒行传 3:19", "使徒行传 3:26",
	"使徒行传 4:20", "使徒行传 7:55-56", "使徒行传 7:60", "使徒行传 9:6",
	"加拉太书 1:10", "加拉太书 1:4", "加拉太书 2:16", "加拉太书 2:2",
	"加拉太书 3:11", "加拉太书 3:22", "加拉太书 3:26", "加拉太书 4:19",
	"加拉太书 4:5", "加拉太书 4:7", "加拉太书 5:16", "加拉太书 5:25",
	"加拉太书 5:6", "加拉太书 6:1", "加拉太书 6:10", "加拉太书 6:8",
	"启示录 1:7", "启示录 1:8", "启示录 20:6", "启示录 22:12-13",
	"启示录 22:7", "启示录 7:12", "启示录 7:9-10", "哥林多前书 10:23",
	"哥林多前书 11:23-25", "哥林多前书 11:26", "哥林多前书 11:28", "哥林多前书 12:1",
	"哥林多前书 13:1", "哥林多前书 13:7", "哥林多前书 14:1", "哥林多前书 14:26",
	"哥林多前书 14:33", "哥林多前书 15:1", "哥林多前书 15:20", "哥林多前书 15:35",
	"哥林多前书 1:2", "哥林多前书 1:25", "哥林多前书 1:30", "哥林多前书 2:16",
	"哥林多前书 2:4", "哥林多前书 2:9", "哥林多前书 3:11", "哥林多前书 3:13",
	"哥林多前书 3:18", "哥林多前书 4:20", "哥林多前书 4:7", "哥林多前书 4:8",
	"哥林多前书 5:7", "哥林多前书 6:19", "哥林多前书 7:17", "哥林多前书 7:23",
	"哥林多前书 7:31", "哥林多前书 8:1", "哥林多前书 8:6", "哥林多前书 9:22",
	"哥林多前书 9:27", "哥林多后书 10:4-5", "哥林多后书 11:14", "哥林多后书 11:3",
	"哥林多后书 12:10", "哥林多后书 12:9", "哥林多后书 13:4", "哥林多后书 1:20",
	"哥林多后书 1:9", "哥林多后书 3:17", "哥林多后书 3:18", "哥林多后书 3:6",
	"哥林多后书 4:16", "哥林多后书 4:17", "哥林多后书 4:6", "哥林多后书 5:1",
	"哥林多后书 5:14", "哥林多后书 5:7", "哥林多后书 6:14", "哥林多后书 6:16",
	"哥林多后书 8:12", "哥林多后书 8:7", "哥林多后书 8:9", "哥林多后书 9:10",
	"哥林多后书 9:15", "希伯来书 10:14", "希伯来书 10:19-22", "希伯来书 11:3",
	"希伯来书 12:11", "希伯来书 12:7", "希伯来书 13:5", "希伯来书 13:8",
	"希伯来书 2:1", "希伯来书 2:17-18", "希伯来书 2:9", "希伯来书 3:1",
	"希伯来书 3:13", "希伯来书 3:6", "希伯来书 4:12", "希伯来书 4:14",
	"希伯来书 5:8-9", "希伯来书 6:1", "希伯来书 7:25", "希伯来书 8:6",
	"希伯来书 9:27-28", "帖撒罗尼迦前书 1:5", "帖撒罗尼迦前书 1:9-10", "帖撒罗尼迦前书 2:19",
	"帖撒罗尼迦前书 2:4", "帖撒罗尼迦前书 3:12", "帖撒罗尼迦前书 4:1", "帖撒罗尼迦前书 4:3",
	"帖撒罗尼迦前书 5:11", "帖撒罗尼迦前书 5:22", "帖撒罗尼迦前书 5:5", "帖撒罗尼迦后书 1:3",
	"帖撒罗尼迦后书 2:1-2", "帖撒罗尼迦后书 3:1", "帖撒罗尼迦后书 3:16", "彼得前书 1:15-16",
	"彼得前书 1:22", "彼得前书 1:8-9", "彼得前书 2:2", "彼得前书 2:21",
	"彼得前书 3:14", "彼得前书 3:18", "彼得前书 3:9", "彼得前书 4:8",
	"彼得前书 5:8", "彼得后书 1:5-7", "彼得后书 1:8", "彼得后书 2:9",
	"彼得后书 3:13", "彼得后书 3:18", "彼得后书 3:9", "提多书 2:11-14",
	"提多书 3:5", "提摩太前书 1:16", "提摩太前书 1:5", "提摩太前书 3:16",
	"提摩太前书 3:9", "提摩太前书 4:12", "提摩太前书 4:8", "提摩太前书 5:8",
	"提摩太前书 6:11", "提摩太前书 6:6", "提摩太后书 1:12", "提摩太后书 1:9",
	"提摩太后书 2:13", "提摩太后书 2:3-4", "提摩太后书 3:1-5", "提摩太后书 3:16",
	"提摩太后书 3:17", "提摩太后书 4:2", "提摩太后书 4:7-8", "歌罗西书 1:18",
	"歌罗西书 1:27", "歌罗西书 2:10", "歌罗西书 2:9", "歌罗西书 3:10",
	"歌罗西书 3:17", "犹大书 1:20-21", "约翰一书 1:7", "约翰一书 1:8",
	"约翰一书 2:6", "约翰一书 3:16", "约翰一书 3:23", "约翰一书 4:1",
	"约翰一书 4:16", "约翰一书 4:18", "约翰一书 4:7", "约翰一书 5:14",
	"约翰一书 5:18", "约翰一书 5:4", "约翰三书 1:11", "约翰二书 1:6",
	"约翰福音 10:11", "约翰福音 10:27-28", "约翰福音 11:25-26", "约翰福音 11:40",
	"约翰福音 12:24", "约翰福音 12:47", "约翰福音 14:12", "约翰福音 14:15",
	"约翰福音 14:21", "约翰福音 15:13", "约翰福音 15:16", "约翰福音 16:7-8",
	"约翰福音 17:17", "约翰福音 17:20-21", "约翰福音 17:3", "约翰福音 19:30",
	"约翰福音 1:14", "约翰福音 1:29", "约翰福音 1:4", "约翰福音 2:5",
	"约翰福音 3:17", "约翰福音 3:3", "约翰福音 3:30", "约翰福音 4:14",
	"约翰福音 5:24", "约翰福音 5:30", "约翰福音 5:45", "约翰福音 6:27",
	"约翰福音 6:40", "约翰福音 6:51", "约翰福音 7:17", "约翰福音 8:12",
	"约翰福音 8:36", "约翰福音 9:4", "罗马书 11:25-26", "罗马书 11:29",
	"罗马书 11:6", "罗马书 12:10", "罗马书 12:14", "罗马书 12:15",
	"罗马书 13:1", "罗马书 13:9", "罗马书 14:10", "罗马书 14:17",
	"罗马书 14:23", "罗马书 15:4", "罗马书 1:17", "罗马书 2:13",
	"罗马书 3:20", "罗马书 3:28", "罗马书 4:13", "罗马书 4:3",
	"罗马书 4:5", "罗马书 5:12", "罗马书 5:17", "罗马书 5:5",
	"罗马书 6:14", "罗马书 6:17-18", "罗马书 6:4", "罗马书 7:14",
	"罗马书 8:1", "罗马书 8:6", "罗马书 9:15-16", "罗马书 9:28",
	"罗马书 9:33", "腓立比书 1:21", "腓立比书 1:27", "腓立比书 2:14",
	"腓立比书 2:3", "腓立比书 2:5", "腓立比书 3:10", "腓立比书 3:14",
	"腓立比书 3:20", "腓立比书 4:6", "腓立比书 4:7", "路加福音 11:28",
	"路加福音 11:9-10", "路加福音 12:31", "路加福音 13:24", "路加福音 13:30",
	"路加福音 14:11", "路加福音 16:10", "路加福音 16:13", "路加福音 17:5",
	"路加福音 18:14", "路加福音 18:27", "路加福音 19:10", "路加福音 1:37",
	"路加福音 1:45", "路加福音 20:25", "路加福音 21:36", "路加福音 22:19-20",
	"路加福音 22:42", "路加福音 23:34", "路加福音 24:49", "路加福音 2:10-11",
	"路加福音 4:18-19", "路加福音 4:4", "路加福音 4:43", "路加福音 5:24",
	"路加福音 5:32", "路加福音 6:27-28", "路加福音 6:46-47", "路加福音 7:50",
	"路加福音 8:15", "路加福音 8:21", "路加福音 9:24", "雅各书 1:12",
	"雅各书 1:2-4", "雅各书 1:6", "雅各书 2:26", "雅各书 2:8",
	"雅各书 3:17", "雅各书 3:2", "雅各书 4:2", "雅各书 5:16",
	"马可福音 10:27", "马可福音 10:45", "马可福音 11:24", "马可福音 12:30-31",
	"马可福音 14:36", "马可福音 14:38", "马可福音 15:39", "马可福音 1:17",
	"马可福音 2:17", "马可福音 3:35", "马可福音 4:20", "马可福音 5:36",
	"马可福音 6:34", "马可福音 7:23", "马可福音 8:36", "马可福音 9:23",
	"马可福音 9:35", "马太福音 10:16", "马太福音 10:32", "马太福音 11:29",
	"马太福音 12:20", "马太福音 12:31", "马太福音 13:23", "马太福音 14:14",
	"马太福音 15:19", "马太福音 17:20", "马太福音 17:5", "马太福音 18:3",
	"马太福音 19:26", "马太福音 20:28", "马太福音 21:22", "马太福音 21:42",
	"马太福音 22:21", "马太福音 24:13", "马太福音 25:21", "马太福音 26:39",
	"马太福音 26:41", "马太福音 3:11", "马太福音 4:19", "马太福音 5:13",
	"马太福音 5:44", "马太福音 6:6", "马太福音 7:1", "马太福音 8:17",
	"马太福音 9:12",
}
