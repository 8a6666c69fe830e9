package catalog

// Spanish New Testament citations eligible for generation (RVR1960 book names).
var versesES = []string{
	"1 Corintios 10:13", "1 Corintios 13:13", "1 Corintios 13:4-7",
	"1 Corintios 15:57", "1 Corintios 16:14", "1 Corintios 2:9",
	"1 Juan 1:9", "1 Juan 3:18", "1 Juan 4:19",
	"1 Juan 4:7-8", "1 Juan 5:14", "1 Pedro 2:9",
	"1 Pedro 5:7", "1 Tesalonicenses 5:16-18", "1 Timoteo 4:12",
	"1 Timoteo 6:6", "2 Corintios 12:9", "2 Corintios 4:16-18",
	"2 Corintios 5:17", "2 Corintios 5:7", "2 Corintios 9:7",
	"2 Juan 1:6", "2 Pedro 1:5-7", "2 Pedro 3:9",
	"2 Tesalonicenses 3:3", "2 Timoteo 1:7", "2 Timoteo 3:16-17",
	"3 Juan 1:2", "Apocalipsis 21:4", "Apocalipsis 22:13",
	"Apocalipsis 3:20", "Colosenses 3:15", "Colosenses 3:17",
	"Colosenses 3:2", "Colosenses 3:23", "Efesios 2:8-9",
	"Efesios 3:20", "Efesios 4:32", "Efesios 6:10-11",
	"Filemón 1:6", "Filipenses 1:6", "Filipenses 2:3-4",
	"Filipenses 4:13", "Filipenses 4:19", "Filipenses 4:4",
	"Filipenses 4:6-7", "Filipenses 4:8", "Gálatas 2:20",
	"Gálatas 5:22-23", "Gálatas 6:9", "Hebreos 10:24-25",
	"Hebreos 11:1", "Hebreos 11:6", "Hebreos 12:1-2",
	"Hebreos 13:5", "Hebreos 13:8", "Hebreos 4:12",
	"Hechos 16:31", "Hechos 17:11", "Hechos 1:8",
	"Hechos 20:35", "Hechos 2:21", "Hechos 2:38",
	"Hechos 4:12", "Juan 10:10", "Juan 11:25-26",
	"Juan 13:34-35", "Juan 14:27", "Juan 14:6",
	"Juan 15:13", "Juan 15:5", "Juan 16:33",
	"Juan 17:3", "Juan 1:1", "Juan 1:12",
	"Juan 1:14", "Juan 3:16", "Juan 3:17",
	"Juan 8:12", "Juan 8:32", "Judas 1:24-25",
	"Lucas 11:9-10", "Lucas 12:31", "Lucas 15:7",
	"Lucas 18:27", "Lucas 19:10", "Lucas 1:37",
	"Lucas 6:31", "Lucas 6:38", "Lucas 9:23",
	"Marcos 10:45", "Marcos 11:24", "Marcos 12:30-31",
	"Marcos 16:15", "Marcos 1:17", "Marcos 2:17",
	"Marcos 8:36", "Marcos 9:23", "Mateo 11:28-30",
	"Mateo 16:24-26", "Mateo 18:20", "Mateo 19:26",
	"Mateo 22:37-39", "Mateo 24:13", "Mateo 25:21",
	"Mateo 26:41", "Mateo 28:19-20", "Mateo 5:13",
	"Mateo 5:14-16", "Mateo 5:44", "Mateo 6:33",
	"Mateo 6:6", "Mateo 6:9-13", "Mateo 7:12",
	"Mateo 7:7-8", "Romanos 10:9-10", "Romanos 12:1-2",
	"Romanos 12:12", "Romanos 15:13", "Romanos 1:16",
	"Romanos 3:23", "Romanos 5:1", "Romanos 5:8",
	"Romanos 6:23", "Romanos 8:1", "Romanos 8:28",
	"Romanos 8:31", "Romanos 8:38-39", "Santiago 1:2-4",
	"Santiago 1:22", "Santiago 1:5", "Santiago 4:7-8",
	"Tito 3:5",
}
