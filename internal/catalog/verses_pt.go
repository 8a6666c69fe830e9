package catalog

// Portuguese New Testament citations eligible for generation (ARC book names).
var versesPT = []string{
	"1 Coríntios 10:13", "1 Coríntios 13:13", "1 Coríntios 13:4-7",
	"1 Coríntios 15:57", "1 Coríntios 16:14", "1 Coríntios 2:9",
	"1 João 1:9", "1 João 3:18", "1 João 4:19",
	"1 João 4:7-8", "1 João 5:14", "1 Pedro 2:9",
	"1 Pedro 5:7", "1 Tessalonicenses 5:16-18", "1 Timóteo 4:12",
	"1 Timóteo 6:6", "2 Coríntios 12:9", "2 Coríntios 4:16-18",
	"2 Coríntios 5:17", "2 Coríntios 5:7", "2 Coríntios 9:7",
	"2 João 1:6", "2 Pedro 1:5-7", "2 Pedro 3:9",
	"2 Tessalonicenses 3:3", "2 Timóteo 1:7", "2 Timóteo 3:16-17",
	"3 João 1:2", "Apocalipse 21:4", "Apocalipse 22:13",
	"Apocalipse 3:20", "Atos 16:31", "Atos 17:11",
	"Atos 1:8", "Atos 20:35", "Atos 2:21",
	"Atos 2:38", "Atos 4:12", "Colossenses 3:15",
	"Colossenses 3:17", "Colossenses 3:2", "Colossenses 3:23",
	"Efésios 2:8-9", "Efésios 3:20", "Efésios 4:32",
	"Efésios 6:10-11", "Filemom 1:6", "Filipenses 1:6",
	"Filipenses 2:3-4", "Filipenses 4:13", "Filipenses 4:19",
	"Filipenses 4:4", "Filipenses 4:6-7", "Filipenses 4:8",
	"Gálatas 2:20", "Gálatas 5:22-23", "Gálatas 6:9",
	"Hebreus 10:24-25", "Hebreus 11:1", "Hebreus 11:6",
	"Hebreus 12:1-2", "Hebreus 13:5", "Hebreus 13:8",
	"Hebreus 4:12", "João 10:10", "João 11:25-26",
	"João 13:34-35", "João 14:27", "João 14:6",
	"João 15:13", "João 15:5", "João 16:33",
	"João 17:3", "João 1:1", "João 1:12",
	"João 1:14", "João 3:16", "João 3:17",
	"João 8:12", "João 8:32", "Judas 1:24-25",
	"Lucas 11:9-10", "Lucas 12:31", "Lucas 15:7",
	"Lucas 18:27", "Lucas 19:10", "Lucas 1:37",
	"Lucas 6:31", "Lucas 6:38", "Lucas 9:23",
	"Marcos 10:45", "Marcos 11:24", "Marcos 12:30-31",
	"Marcos 16:15", "Marcos 1:17", "Marcos 2:17",
	"Marcos 8:36", "Marcos 9:23", "Mateus 11:28-30",
	"Mateus 16:24-26", "Mateus 18:20", "Mateus 19:26",
	"Mateus 22:37-39", "Mateus 24:13", "Mateus 25:21",
	"Mateus 26:41", "Mateus 28:19-20", "Mateus 5:13",
	"Mateus 5:14-16", "Mateus 5:44", "Mateus 6:33",
	"Mateus 6:6", "Mateus 6:9-13", "Mateus 7:12",
	"Mateus 7:7-8", "Romanos 10:9-10", "Romanos 12:1-2",
	"Romanos 12:12", "Romanos 15:13", "Romanos 1:16",
	"Romanos 3:23", "Romanos 5:1", "Romanos 5:8",
	"Romanos 6:23", "Romanos 8:1", "Romanos 8:28",
	"Romanos 8:31", "Romanos 8:38-39", "Tiago 1:2-4",
	"Tiago 1:22", "Tiago 1:5", "Tiago 4:7-8",
	"Tito 3:5",
}
