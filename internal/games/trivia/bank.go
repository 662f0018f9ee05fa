package trivia

// QuestionBank is the built-in question pool, a few per category and
// difficulty. Kept deliberately general-knowledge so answers do not go stale.
var QuestionBank = []Question{
	{
		Prompt:     "What is the largest planet in our solar system?",
		Answer:     "Jupiter",
		Decoys:     []string{"Saturn", "Neptune", "Earth"},
		Category:   "science",
		Difficulty: "easy",
	},
	{
		Prompt:     "How many continents are there?",
		Answer:     "7",
		Decoys:     []string{"5", "6", "8"},
		Category:   "geography",
		Difficulty: "easy",
	},
	{
		Prompt:     "Which animal is known as the King of the Jungle?",
		Answer:     "Lion",
		Decoys:     []string{"Tiger", "Elephant", "Gorilla"},
		Category:   "animals",
		Difficulty: "easy",
	},
	{
		Prompt:     "What color do you get when you mix blue and yellow?",
		Answer:     "Green",
		Decoys:     []string{"Purple", "Orange", "Brown"},
		Category:   "general",
		Difficulty: "easy",
	},
	{
		Prompt:     "Which element has the chemical symbol 'Fe'?",
		Answer:     "Iron",
		Decoys:     []string{"Fluorine", "Lead", "Tin"},
		Category:   "science",
		Difficulty: "medium",
	},
	{
		Prompt:     "In which country would you find Machu Picchu?",
		Answer:     "Peru",
		Decoys:     []string{"Chile", "Mexico", "Bolivia"},
		Category:   "geography",
		Difficulty: "medium",
	},
	{
		Prompt:     "How many keys does a standard piano have?",
		Answer:     "88",
		Decoys:     []string{"76", "92", "100"},
		Category:   "music",
		Difficulty: "medium",
	},
	{
		Prompt:     "Which planet has the most moons?",
		Answer:     "Saturn",
		Decoys:     []string{"Jupiter", "Uranus", "Mars"},
		Category:   "science",
		Difficulty: "medium",
	},
	{
		Prompt:     "What is the smallest prime number greater than 100?",
		Answer:     "101",
		Decoys:     []string{"103", "107", "109"},
		Category:   "math",
		Difficulty: "hard",
	},
	{
		Prompt:     "Which country has the longest coastline in the world?",
		Answer:     "Canada",
		Decoys:     []string{"Russia", "Australia", "Norway"},
		Category:   "geography",
		Difficulty: "hard",
	},
	{
		Prompt:     "What is the only metal that is liquid at room temperature?",
		Answer:     "Mercury",
		Decoys:     []string{"Gallium", "Bromine", "Cesium"},
		Category:   "science",
		Difficulty: "hard",
	},
	{
		Prompt:     "In what year was the first email sent?",
		Answer:     "1971",
		Decoys:     []string{"1969", "1975", "1981"},
		Category:   "technology",
		Difficulty: "hard",
	},
}
