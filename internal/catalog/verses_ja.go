package catalog

// Japanese New Testament citations eligible for generation (新改訳 book names).
var versesJA = []string{
	"エペソ人への手紙 1:13-14", "エペソ人への手紙 1:3-4", "エペソ人への手紙 1:7", "エペソ人への手紙 2:10",
	"エペソ人への手紙 2:19-22", "エペソ人への手紙 2:4-5", "エペソ人への手紙 2:8-9", "エペソ人への手紙 4:22-24",
	"エペソ人への手紙 4:26-27", "エペソ人への手紙 4:29", "エペソ人への手紙 4:30", "エペソ人への手紙 4:31",
	"エペソ人への手紙 5:1-2", "エペソ人への手紙 5:18", "エペソ人への手紙 5:25-27", "エペソ人への手紙 6:1-3",
	"エペソ人への手紙 6:10-13", "エペソ人への手紙 6:19-20", "ガラテヤ人への手紙 2:20", "ガラテヤ人への手紙 5:1",
	"ガラテヤ人への手紙 5:13", "ガラテヤ人への手紙 5:16", "ガラテヤ人への手紙 5:22-23", "ガラテヤ人への手紙 6:14",
	"ガラテヤ人への手紙 6:2", "ガラテヤ人への手紙 6:7-8", "ガラテヤ人への手紙 6:9", "コリント人への手紙第一 10:31",
	"コリント人への手紙第一 13:1-3", "コリント人への手紙第一 13:4-7", "コリント人への手紙第一 14:33", "コリント人への手紙第一 15:3-4",
	"コリント人への手紙第一 15:57", "コリント人への手紙第一 16:14", "コリント人への手紙第一 1:18", "コリント人への手紙第一 2:9",
	"コリント人への手紙第一 3:11", "コリント人への手紙第一 3:16", "コリント人への手紙第一 4:2", "コリント人への手紙第一 7:23",
	"コリント人への手紙第一 9:24", "コリント人への手紙第二 12:9-10", "コリント人への手紙第二 13:5", "コリント人への手紙第二 1:3-4",
	"コリント人への手紙第二 3:17", "コリント人への手紙第二 4:16-18", "コリント人への手紙第二 4:5", "コリント人への手紙第二 4:6",
	"コリント人への手紙第二 4:7", "コリント人への手紙第二 5:17", "コリント人への手紙第二 5:18-19", "コリント人への手紙第二 5:20",
	"コリント人への手紙第二 5:21", "コリント人への手紙第二 5:7", "コリント人への手紙第二 6:14", "コリント人への手紙第二 7:10",
	"コリント人への手紙第二 8:9", "コリント人への手紙第二 9:7", "コロサイ人への手紙 1:15-17", "コロサイ人への手紙 1:18",
	"コロサイ人への手紙 1:27", "コロサイ人への手紙 2:8", "コロサイ人への手紙 3:1-2", "コロサイ人への手紙 3:12-14",
	"コロサイ人への手紙 3:15", "コロサイ人への手紙 3:16", "コロサイ人への手紙 3:23", "コロサイ人への手紙 3:5",
	"コロサイ人への手紙 4:2", "コロサイ人への手紙 4:6", "テサロニケ人への手紙第一 1:9-10", "テサロニケ人への手紙第一 4:3-5",
	"テサロニケ人への手紙第一 5:11", "テサロニケ人への手紙第一 5:19", "テサロニケ人への手紙第一 5:21-22", "テサロニケ人への手紙第一 5:23-24",
	"テサロニケ人への手紙第二 2:13-14", "テサロニケ人への手紙第二 3:10", "テトスへの手紙 1:5-9", "テトスへの手紙 2:11-14",
	"テトスへの手紙 3:4-5", "テトスへの手紙 3:8", "テモテへの手紙第一 1:15-16", "テモテへの手紙第一 2:8",
	"テモテへの手紙第一 3:16", "テモテへの手紙第一 4:12", "テモテへの手紙第一 4:7-8", "テモテへの手紙第一 5:8",
	"テモテへの手紙第一 6:10", "テモテへの手紙第一 6:12", "テモテへの手紙第一 6:17-19", "テモテへの手紙第一 6:6-8",
	"テモテへの手紙第二 1:7", "テモテへの手紙第二 1:9", "テモテへの手紙第二 2:15", "テモテへの手紙第二 2:3-4",
	"テモテへの手紙第二 3:1-5", "テモテへの手紙第二 3:16", "テモテへの手紙第二 3:17", "テモテへの手紙第二 4:18",
	"テモテへの手紙第二 4:2", "テモテへの手紙第二 4:7-8", "ピリピ人への手紙 1:6", "ピリピ人への手紙 2:14-15",
	"ピリピ人への手紙 2:3-4", "ピリピ人への手紙 2:5", "ピリピ人への手紙 2:6-8", "ピリピ人への手紙 2:9-11",
	"ピリピ人への手紙 3:13-14", "ピリピ人への手紙 3:20-21", "ピリピ人への手紙 3:7-8", "ピリピ人への手紙 4:13",
	"ピリピ人への手紙 4:19", "ピリピ人への手紙 4:4", "ピリピ人への手紙 4:6-7", "ピリピ人への手紙 4:8",
	"ピレモンへの手紙 1:16", "ピレモンへの手紙 1:6", "ヘブル人への手紙 10:24-25", "ヘブル人への手紙 11:1",
	"ヘブル人への手紙 12:1", "ヘブル人への手紙 12:14", "ヘブル人への手紙 12:2", "ヘブル人への手紙 12:6-7",
	"ヘブル人への手紙 13:14", "ヘブル人への手紙 13:15-16", "ヘブル人への手紙 13:17", "ヘブル人への手紙 13:5",
	"ヘブル人への手紙 1:3", "ヘブル人への手紙 2:14-15", "ヘブル人への手紙 4:12", "ヘブル人への手紙 4:14-16",
	"ヘブル人への手紙 5:8-9", "ヘブル人への手紙 6:1-2", "ヘブル人への手紙 7:25", "ヘブル人への手紙 8:6",
	"ヘブル人への手紙 9:27-28", "ペテロの手紙第一 1:3-5", "ペテロの手紙第一 1:8-9", "ペテロの手紙第一 2:2-3",
	"ペテロの手紙第一 2:9-10", "ペテロの手紙第一 3:15", "ペテロの手紙第一 3:8-9", "ペテロの手紙第一 4:8",
	"ペテロの手紙第一 5:10", "ペテロの手紙第一 5:5-6", "ペテロの手紙第一 5:7", "ペテロの手紙第一 5:8-9",
	"ペテロの手紙第二 1:19-21", "ペテロの手紙第二 1:3-4", "ペテロの手紙第二 1:5-7", "ペテロの手紙第二 3:10",
	"ペテロの手紙第二 3:9", "マタイの福音書 10:32-33", "マタイの福音書 10:37-39", "マタイの福音書 11:28-30",
	"マタイの福音書 12:31-32", "マタイの福音書 13:3-9", "マタイの福音書 13:31-32", "マタイの福音書 13:44-46",
	"マタイの福音書 14:19-21", "マタイの福音書 16:18-19", "マタイの福音書 16:24-26", "マタイの福音書 18:20",
	"マタイの福音書 18:21-22", "マタイの福音書 19:26", "マタイの福音書 1:1", "マタイの福音書 20:26-28",
	"マタイの福音書 21:21-22", "マタイの福音書 23:11-12", "マタイの福音書 25:31-36", "マタイの福音書 26:26-28",
	"マタイの福音書 27:46", "マタイの福音書 2:1-2", "マタイの福音書 3:16-17", "マタイの福音書 4:19",
	"マタイの福音書 4:4", "マタイの福音書 5:14-16", "マタイの福音書 5:3-10", "マタイの福音書 5:44-45",
	"マタイの福音書 6:24", "マタイの福音書 6:33", "マタイの福音書 6:9-13", "マタイの福音書 7:12",
	"マタイの福音書 7:13-14", "マタイの福音書 7:24-27", "マタイの福音書 7:7-8", "マタイの福音書 8:26-27",
	"マタイの福音書 9:12-13", "マルコの福音書 10:45", "マルコの福音書 11:24", "マルコの福音書 12:30-31",
	"マルコの福音書 14:36", "マルコの福音書 15:39", "マルコの福音書 16:15", "マルコの福音書 1:15",
	"マルコの福音書 2:17", "マルコの福音書 4:35", "マルコの福音書 6:31", "マルコの福音書 7:20-23",
	"マルコの福音書 8:34", "マルコの福音書 9:23", "マルコの福音書 9:35", "ヤコブの手紙 1:12",
	"ヤコブの手紙 1:19-20", "ヤコブの手紙 1:2-4", "ヤコブの手紙 1:22", "ヤコブの手紙 1:5",
	"ヤコブの手紙 2:17", "ヤコブの手紙 2:19", "ヤコブの手紙 2:8", "ヤコブの手紙 3:17",
	"ヤコブの手紙 4:10", "ヤコブの手紙 4:14", "ヤコブの手紙 4:8", "ヤコブの手紙 5:15-16",
	"ユダの手紙 1:20-21", "ユダの手紙 1:24-25", "ヨハネの手紙第一 1:5-7", "ヨハネの手紙第一 1:8",
	"ヨハネの手紙第一 2:15-17", "ヨハネの手紙第一 2:3-4", "ヨハネの手紙第一 3:1", "ヨハネの手紙第一 3:16",
	"ヨハネの手紙第一 3:18", "ヨハネの手紙第一 3:2", "ヨハネの手紙第一 3:8", "ヨハネの手紙第一 4:1",
	"ヨハネの手紙第一 4:11", "ヨハネの手紙第一 4:12", "ヨハネの手紙第一 4:16", "ヨハネの手紙第一 4:18",
	"ヨハネの手紙第一 4:19", "ヨハネの手紙第一 4:9-10", "ヨハネの手紙第一 5:11-12", "ヨハネの手紙第一 5:13",
	"ヨハネの手紙第一 5:14-15", "ヨハネの手紙第一 5:20", "ヨハネの手紙第一 5:3", "ヨハネの手紙第一 5:4",
	"ヨハネの手紙第三 1:11", "ヨハネの手紙第三 1:4", "ヨハネの手紙第二 1:6", "ヨハネの福音書 10:10",
	"ヨハネの福音書 11:25-26", "ヨハネの福音書 12:24", "ヨハネの福音書 13:34-35", "ヨハネの福音書 14:1",
	"ヨハネの福音書 14:15", "ヨハネの福音書 14:16-17", "ヨハネの福音書 14:2-3", "ヨハネの福音書 14:27",
	"ヨハネの福音書 14:6", "ヨハネの福音書 15:1", "ヨハネの福音書 15:12", "ヨハネの福音書 15:13",
	"ヨハネの福音書 15:16", "ヨハネの福音書 15:5", "ヨハネの福音書 15:8", "ヨハネの福音書 16:33",
	"ヨハネの福音書 16:7", "ヨハネの福音書 17:3", "ヨハネの福音書 1:1", "ヨハネの福音書 1:12",
	"ヨハネの福音書 20:29", "ヨハネの福音書 21:17", "ヨハネの福音書 3:16", "ヨハネの福音書 3:17",
	"ヨハネの福音書 3:18", "ヨハネの福音書 3:19", "ヨハネの福音書 3:3", "ヨハネの福音書 3:30",
	"ヨハネの福音書 4:23-24", "ヨハネの福音書 4:24", "ヨハネの福音書 5:24", "ヨハネの福音書 6:35",
	"ヨハネの福音書 7:38-39", "ヨハネの福音書 8:12", "ヨハネの福音書 8:32", "ヨハネの黙示録 14:13",
	"ヨハネの黙示録 19:11", "ヨハネの黙示録 1:7", "ヨハネの黙示録 1:8", "ヨハネの黙示録 21:1",
	"ヨハネの黙示録 21:4", "ヨハネの黙示録 22:12-13", "ヨハネの黙示録 22:17", "ヨハネの黙示録 22:20",
	"ヨハネの黙示録 2:4", "ヨハネの黙示録 2:7", "ヨハネの黙示録 3:16", "ヨハネの黙示録 3:20",
	"ヨハネの黙示録 3:8", "ヨハネの黙示録 4:8", "ヨハネの黙示録 7:16-17", "ルカの福音書 10:19",
	"ルカの福音書 10:2", "ルカの福音書 11:13", "ルカの福音書 11:28", "ルカの福音書 12:34",
	"ルカの福音書 12:4-5", "ルカの福音書 12:48", "ルカの福音書 14:11", "ルカの福音書 15:10",
	"ルカの福音書 15:32", "ルカの福音書 15:7", "ルカの福音書 17:20-21", "ルカの福音書 17:6",
	"ルカの福音書 18:14", "ルカの福音書 18:27", "ルカの福音書 19:10", "ルカの福音書 1:37",
	"ルカの福音書 24:47", "ルカの福音書 24:49", "ルカの福音書 24:6-7", "ルカの福音書 2:10-11",
	"ルカの福音書 4:18-19", "ルカの福音書 5:32", "ルカの福音書 6:36", "ルカの福音書 6:37-38",
	"ルカの福音書 9:23-24", "ローマ人への手紙 10:13", "ローマ人への手紙 10:4", "ローマ人への手紙 10:9-10",
	"ローマ人への手紙 11:33-36", "ローマ人への手紙 12:1-2", "ローマ人への手紙 12:12", "ローマ人への手紙 12:3",
	"ローマ人への手紙 13:1", "ローマ人への手紙 13:8", "ローマ人への手紙 14:12", "ローマ人への手紙 15:13",
	"ローマ人への手紙 15:4", "ローマ人への手紙 1:16", "ローマ人への手紙 1:20", "ローマ人への手紙 3:23",
	"ローマ人への手紙 3:24", "ローマ人への手紙 3:28", "ローマ人への手紙 5:1", "ローマ人への手紙 5:5",
	"ローマ人への手紙 5:8", "ローマ人への手紙 6:11", "ローマ人への手紙 6:23", "ローマ人への手紙 6:4",
	"ローマ人への手紙 8:11", "ローマ人への手紙 8:14", "ローマ人への手紙 8:28", "ローマ人への手紙 8:31",
	"ローマ人への手紙 8:37-39", "ローマ人への手紙 9:15-16", "使徒の働き 10:43", "使徒の働き 13:38-39",
	"使徒の働き 16:31", "使徒の働き 17:11", "使徒の働き 17:28", "使徒の働き 17:30-31",
	"使徒の働き 1:8", "使徒の働き 20:24", "使徒の働き 20:35", "使徒の働き 2:1-4",
	"使徒の働き 2:21", "使徒の働き 4:12", "使徒の働き 5:29", "使徒の働き 7:55-56",
	"使徒の働き 9:3-6",
}
