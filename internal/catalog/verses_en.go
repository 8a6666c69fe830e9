package catalog

// English New Testament citations eligible for generation.
var versesEN = []string{
	"1 Corinthians 10:13", "1 Corinthians 13:13", "1 Corinthians 13:4-7",
	"1 Corinthians 15:57", "1 Corinthians 16:14", "1 Corinthians 2:9",
	"1 John 1:9", "1 John 3:18", "1 John 4:19",
	"1 John 4:7-8", "1 John 5:14", "1 Peter 2:9",
	"1 Peter 5:7", "1 Thessalonians 5:16-18", "1 Timothy 4:12",
	"1 Timothy 6:6", "2 Corinthians 12:9", "2 Corinthians 4:16-18",
	"2 Corinthians 5:17", "2 Corinthians 5:7", "2 Corinthians 9:7",
	"2 John 1:6", "2 Peter 1:5-7", "2 Peter 3:9",
	"2 Thessalonians 3:3", "2 Timothy 1:7", "2 Timothy 3:16-17",
	"3 John 1:2", "Acts 16:31", "Acts 17:11",
	"Acts 1:8", "Acts 20:35", "Acts 2:21",
	"Acts 2:38", "Acts 4:12", "Colossians 3:15",
	"Colossians 3:17", "Colossians 3:2", "Colossians 3:23",
	"Ephesians 2:8-9", "Ephesians 3:20", "Ephesians 4:32",
	"Ephesians 6:10-11", "Galatians 2:20", "Galatians 5:22-23",
	"Galatians 6:9", "Hebrews 10:24-25", "Hebrews 11:1",
	"Hebrews 11:6", "Hebrews 12:1-2", "Hebrews 13:5",
	"Hebrews 13:8", "Hebrews 4:12", "James 1:2-4",
	"James 1:22", "James 1:5", "James 4:7-8",
	"John 10:10", "John 11:25-26", "John 13:34-35",
	"John 14:27", "John 14:6", "John 15:13",
	"John 15:5", "John 16:33", "John 17:3",
	"John 1:1", "John 1:12", "John 1:14",
	"John 3:16", "John 3:17", "John 8:12",
	"John 8:32", "Jude 1:24-25", "Luke 11:9-10",
	"Luke 12:31", "Luke 15:7", "Luke 18:27",
	"Luke 19:10", "Luke 1:37", "Luke 6:31",
	"Luke 6:38", "Luke 9:23", "Mark 10:45",
	"Mark 11:24", "Mark 12:30-31", "Mark 16:15",
	"Mark 1:17", "Mark 2:17", "Mark 8:36",
	"Mark 9:23", "Matthew 11:28-30", "Matthew 16:24-26",
	"Matthew 18:20", "Matthew 19:26", "Matthew 22:37-39",
	"Matthew 24:13", "Matthew 25:21", "Matthew 26:41",
	"Matthew 28:19-20", "Matthew 5:13", "Matthew 5:14-16",
	"Matthew 5:44", "Matthew 6:33", "Matthew 6:6",
	"Matthew 6:9-13", "Matthew 7:12", "Matthew 7:7-8",
	"Philemon 1:6", "Philippians 1:6", "Philippians 2:3-4",
	"Philippians 4:13", "Philippians 4:19", "Philippians 4:4",
	"Philippians 4:6-7", "Philippians 4:8", "Revelation 21:4",
	"Revelation 22:13", "Revelation 3:20", "Romans 10:9-10",
	"Romans 12:1-2", "Romans 12:12", "Romans 15:13",
	"Romans 1:16", "Romans 3:23", "Romans 5:1",
	"Romans 5:8", "Romans 6:23", "Romans 8:1",
	"Romans 8:28", "Romans 8:31", "Romans 8:38-39",
	"Titus 3:5",
}
