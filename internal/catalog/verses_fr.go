package catalog

// French New Testament citations eligible for generation (LS1910 book names).
var versesFR = []string{
	"1 Corinthiens 10:13", "1 Corinthiens 13:13", "1 Corinthiens 13:4-7",
	"1 Corinthiens 15:57", "1 Corinthiens 16:14", "1 Corinthiens 2:9",
	"1 Jean 1:9", "1 Jean 3:18", "1 Jean 4:19",
	"1 Jean 4:7-8", "1 Jean 5:14", "1 Pierre 2:9",
	"1 Pierre 5:7", "1 Thessaloniciens 5:16-18", "1 Timothée 4:12",
	"1 Timothée 6:6", "2 Corinthiens 12:9", "2 Corinthiens 4:16-18",
	"2 Corinthiens 5:17", "2 Corinthiens 5:7", "2 Corinthiens 9:7",
	"2 Jean 1:6", "2 Pierre 1:5-7", "2 Pierre 3:9",
	"2 Thessaloniciens 3:3", "2 Timothée 1:7", "2 Timothée 3:16-17",
	"3 Jean 1:2", "Actes 16:31", "Actes 17:11",
	"Actes 1:8", "Actes 20:35", "Actes 2:21",
	"Actes 2:38", "Actes 4:12", "Apocalypse 21:4",
	"Apocalypse 22:13", "Apocalypse 3:20", "Colossiens 3:15",
	"Colossiens 3:17", "Colossiens 3:2", "Colossiens 3:23",
	"Galates 2:20", "Galates 5:22-23", "Galates 6:9",
	"Hébreux 10:24-25", "Hébreux 11:1", "Hébreux 11:6",
	"Hébreux 12:1-2", "Hébreux 13:5", "Hébreux 13:8",
	"Hébreux 4:12", "Jacques 1:2-4", "Jacques 1:22",
	"Jacques 1:5", "Jacques 4:7-8", "Jean 10:10",
	"Jean 11:25-26", "Jean 13:34-35", "Jean 14:27",
	"Jean 14:6", "Jean 15:13", "Jean 15:5",
	"Jean 16:33", "Jean 17:3", "Jean 1:1",
	"Jean 1:12", "Jean 1:14", "Jean 3:16",
	"Jean 3:17", "Jean 8:12", "Jean 8:32",
	"Jude 1:24-25", "Luc 11:9-10", "Luc 12:31",
	"Luc 15:7", "Luc 18:27", "Luc 19:10",
	"Luc 1:37", "Luc 6:31", "Luc 6:38",
	"Luc 9:23", "Marc 10:45", "Marc 11:24",
	"Marc 12:30-31", "Marc 16:15", "Marc 1:17",
	"Marc 2:17", "Marc 8:36", "Marc 9:23",
	"Matthieu 11:28-30", "Matthieu 16:24-26", "Matthieu 18:20",
	"Matthieu 19:26", "Matthieu 22:37-39", "Matthieu 24:13",
	"Matthieu 25:21", "Matthieu 26:41", "Matthieu 28:19-20",
	"Matthieu 5:13", "Matthieu 5:14-16", "Matthieu 5:44",
	"Matthieu 6:33", "Matthieu 6:6", "Matthieu 6:9-13",
	"Matthieu 7:12", "Matthieu 7:7-8", "Philippiens 1:6",
	"Philippiens 2:3-4", "Philippiens 4:13", "Philippiens 4:19",
	"Philippiens 4:4", "Philippiens 4:6-7", "Philippiens 4:8",
	"Philémon 1:6", "Romains 10:9-10", "Romains 12:1-2",
	"Romains 12:12", "Romains 15:13", "Romains 1:16",
	"Romains 3:23", "Romains 5:1", "Romains 5:8",
	"Romains 6:23", "Romains 8:1", "Romains 8:28",
	"Romains 8:31", "Romains 8:38-39", "Tite 3:5",
	"Éphésiens 2:8-9", "Éphésiens 3:20", "Éphésiens 4:32",
	"Éphésiens 6:10-11",
}
