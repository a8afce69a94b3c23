package lexicon

// defaultSkills is the production skill catalog. Entries are lower case;
// multi-word entries are matched as substrings during extraction.
var defaultSkills = []string{
	// Languages
	"go", "golang", "python", "java", "javascript", "typescript", "c", "c++",
	"c#", "ruby", "php", "rust", "kotlin", "swift", "scala", "elixir", "perl",
	"r", "dart", "lua", "objective-c", "matlab", "bash", "powershell",

	// Frontend
	"react", "angular", "vue", "svelte", "next.js", "nuxt", "redux", "jquery",
	"html", "css", "sass", "less", "tailwind", "bootstrap", "webpack", "vite",
	"babel", "storybook",

	// Backend & frameworks
	"node.js", "express", "nestjs", "django", "flask", "fastapi", "spring",
	"spring boot", "rails", "laravel", "gin", "fiber", "grpc", "graphql",
	"rest", "websocket", "oauth", "jwt",

	// Data stores
	"postgresql", "postgres", "mysql", "sqlite", "mongodb", "redis",
	"cassandra", "dynamodb", "elasticsearch", "memcached", "neo4j",
	"sql", "nosql",

	// Cloud & infrastructure
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ansible",
	"jenkins", "circleci", "github actions", "gitlab", "nginx", "linux",
	"serverless", "lambda", "cloudformation", "helm", "prometheus", "grafana",
	"datadog", "s3", "ec2",

	// Messaging & streaming
	"kafka", "rabbitmq", "sqs", "nats", "pubsub",

	// Data & ML
	"machine learning", "deep learning", "data science", "data engineering",
	"natural language processing", "computer vision", "tensorflow", "pytorch",
	"scikit-learn", "pandas", "numpy", "spark", "hadoop", "airflow", "tableau",
	"power bi", "etl",

	// Mobile
	"android", "ios", "react native", "flutter", "xamarin",

	// Tooling & practice
	"git", "jira", "figma", "postman", "swagger", "unit testing",
	"integration testing", "test driven development", "selenium", "cypress",
	"jest", "mocha", "junit", "pytest",

	// .NET ecosystem
	".net", "asp.net", "entity framework",
}

// defaultIndustryKeywords is the fixed industry keyword list used for
// experience-relevance and keyword-density scoring.
var defaultIndustryKeywords = []string{
	"agile", "scrum", "kanban", "ci/cd", "devops", "microservices",
	"distributed systems", "scalability", "performance", "architecture",
	"code review", "pair programming", "mentoring", "sprint",
	"cross-functional", "stakeholder", "backlog", "refactoring",
	"observability", "monitoring", "incident", "sla", "api design",
	"cloud native", "infrastructure as code", "continuous integration",
	"continuous deployment",
}

// defaultActionVerbs is the fixed set of strong resume action verbs. A
// bullet counts toward the action-verb score only if its first word is in
// this set.
var defaultActionVerbs = []string{
	"achieved", "architected", "automated", "built", "collaborated",
	"created", "decreased", "delivered", "designed", "developed", "directed",
	"drove", "eliminated", "engineered", "established", "expanded",
	"implemented", "improved", "increased", "initiated", "launched", "led",
	"maintained", "managed", "mentored", "migrated", "optimized",
	"orchestrated", "oversaw", "pioneered", "reduced", "refactored",
	"resolved", "scaled", "shipped", "spearheaded", "streamlined",
	"transformed",
}

// defaultStopWords is the small stop-word list excluded from keyword
// tokenization during job matching.
var defaultStopWords = []string{
	"the", "and", "for", "with", "that", "this", "from", "have", "will",
	"your", "you", "are", "our", "their", "them", "they", "been", "being",
	"was", "were", "what", "when", "where", "which", "while", "about",
	"into", "over", "under", "between", "through", "than", "then", "there",
	"these", "those", "such", "each", "other", "more", "most", "some",
	"also", "able", "both", "must", "should", "would", "could", "work",
	"working", "years", "year", "experience", "team", "role", "plus",
	"strong", "good", "great", "well",
}

// defaultHighDemandSkills is the fixed high-demand skill set that triggers
// the ATS skill-match bonus when present in the extracted skills.
var defaultHighDemandSkills = []string{
	"react", "node.js", "python", "typescript", "aws", "docker",
}
