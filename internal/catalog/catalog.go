// Package catalog provides the curated skill catalog used for catalog-based
// skill extraction. The catalog is read-only after package init and safe for
// unlimited concurrent readers.
package catalog

import "sort"

// categories maps a skill category to its canonical skill strings.
var categories = map[string][]string{
	"programming": {
		"Python", "Java", "JavaScript", "C++", "C#", "Ruby", "PHP", "Swift",
		"Kotlin", "Go", "Rust", "TypeScript", "Scala", "R", "MATLAB", "SQL",
		"Perl", "Bash", "Shell", "Assembly", "Fortran", "COBOL", "HTML", "CSS",
	},
	"frameworks": {
		"React", "Angular", "Vue.js", "Django", "Flask", "Spring", "Node.js",
		"Express.js", "TensorFlow", "PyTorch", "Keras", "Scikit-learn", "Pandas",
		"NumPy", "jQuery", "Bootstrap", "Laravel", "Ruby on Rails", "ASP.NET",
		"Symfony", ".NET Core", "Xamarin", "Flutter", "SwiftUI",
	},
	"databases": {
		"MySQL", "PostgreSQL", "SQLite", "MongoDB", "Oracle", "Microsoft SQL Server",
		"Redis", "Cassandra", "Elasticsearch", "DynamoDB", "Firestore", "Neo4j",
		"MariaDB", "CouchDB", "Hadoop", "Hive", "Spark SQL", "IBM Db2",
	},
	"tools": {
		"Git", "GitHub", "GitLab", "Docker", "Kubernetes", "AWS", "Azure", "GCP",
		"Jenkins", "Travis CI", "CircleCI", "Ansible", "Terraform", "Puppet", "Chef",
		"Jira", "Confluence", "Slack", "Trello", "Heroku", "Nginx", "Apache",
		"Linux", "Unix", "Windows Server", "macOS", "Eclipse", "Visual Studio",
		"VS Code", "IntelliJ IDEA", "PyCharm", "Sublime Text", "Atom", "Vim",
	},
	"data_science": {
		"Machine Learning", "Deep Learning", "AI", "Natural Language Processing",
		"Computer Vision", "Data Mining", "Statistics", "Big Data", "Data Warehousing",
		"ETL", "Business Intelligence", "Tableau", "Power BI", "Looker", "Qlik",
		"SAS", "SPSS", "Data Science", "A/B Testing", "Regression Analysis",
		"Classification", "Clustering", "Decision Trees", "Random Forests",
		"Neural Networks", "Time Series Analysis", "Predictive Modeling",
	},
	"methodologies": {
		"Agile", "Scrum", "Kanban", "Lean", "Waterfall", "DevOps", "CI/CD",
		"TDD", "BDD", "XP", "ITIL", "Six Sigma", "PMP", "PRINCE2", "SAFe",
		"Product Management", "Requirements Analysis", "UML", "ERD",
	},
	"soft_skills": {
		"Leadership", "Communication", "Problem Solving", "Team Work", "Time Management",
		"Critical Thinking", "Decision Making", "Adaptability", "Creativity", "Collaboration",
		"Presentation", "Negotiation", "Conflict Resolution", "Emotional Intelligence",
	},
	"business": {
		"Project Management", "Marketing", "Sales", "CRM",
		"ERP", "Supply Chain", "Logistics", "Finance", "Accounting", "Budgeting",
		"Strategic Planning", "Business Analysis", "Financial Analysis", "Market Research",
		"SWOT Analysis", "Customer Experience", "UX Research", "SEO", "SEM", "Content Marketing",
	},
	"design": {
		"UI/UX", "Graphic Design", "Adobe Photoshop", "Adobe Illustrator", "Adobe XD",
		"Sketch", "Figma", "InDesign", "After Effects", "Premiere Pro", "3D Modeling",
		"Animation", "Wireframing", "Prototyping", "Responsive Design", "Accessibility",
		"Typography", "Color Theory", "Branding", "User Research", "Usability Testing",
	},
}

// all is the flattened, deduplicated catalog, sorted for deterministic
// iteration order.
var all = flatten()

func flatten() []string {
	seen := make(map[string]bool)
	skills := make([]string, 0, 256)
	for _, list := range categories {
		for _, skill := range list {
			if !seen[skill] {
				seen[skill] = true
				skills = append(skills, skill)
			}
		}
	}
	sort.Strings(skills)
	return skills
}

// All returns every catalog skill in sorted order. Callers must not mutate
// the returned slice.
func All() []string {
	return all
}

// Categories returns the category names present in the catalog.
func Categories() []string {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Skills returns the canonical skills for one category, or nil when the
// category is unknown.
func Skills(category string) []string {
	return categories[category]
}
