package resume

// DefaultDocument returns the seed document every new session starts from.
func DefaultDocument() Document {
	d := Document{
		Name:      "Priya Sharma",
		JobTitle:  "Senior Software Engineer",
		Email:     "priya.sharma@email.com",
		Phone:     "+91 98765 43210",
		Location:  "Bengaluru, India",
		LinkedIn:  "linkedin.com/in/priyasharma",
		Portfolio: "priyasharma.dev",
		Summary: "Results-driven Senior Software Engineer with 8+ years of experience in designing, " +
			"developing, and deploying scalable web applications. Proficient in full-stack development " +
			"with expertise in React, Node.js, and cloud-native technologies. Proven ability to lead " +
			"projects, mentor junior developers, and collaborate effectively in fast-paced Agile environments.",
		Skills: []string{
			"JavaScript (ES6+)",
			"TypeScript",
			"React & Redux",
			"Node.js & Express",
			"Python",
			"SQL & NoSQL (PostgreSQL, MongoDB)",
			"Docker & Kubernetes",
			"AWS & GCP",
			"CI/CD Pipelines",
			"Agile Methodologies",
		},
		Experiences: []Experience{
			{
				ID:        1,
				Title:     "Senior Software Engineer",
				Company:   "InnovateTech Solutions",
				Location:  "Bengaluru",
				StartDate: "Jan 2020",
				EndDate:   "Present",
				Description: []string{
					"Led the development of a high-traffic e-commerce platform, resulting in a 40% increase in user engagement.",
					"Architected and implemented a microservices-based backend using Node.js, improving system scalability and reducing latency by 25%.",
					"Mentored a team of 4 junior engineers, fostering a culture of code quality and continuous learning.",
					"Managed CI/CD pipelines using Jenkins and Docker, automating deployment and reducing release cycles by 50%.",
				},
			},
			{
				ID:        2,
				Title:     "Software Engineer",
				Company:   "CodeCrafters Inc.",
				Location:  "Mumbai",
				StartDate: "Jun 2016",
				EndDate:   "Dec 2019",
				Description: []string{
					"Developed and maintained client-side features for a SaaS product using React and Redux.",
					"Collaborated with UX/UI designers to translate wireframes into responsive and accessible user interfaces.",
					"Wrote comprehensive unit and integration tests, increasing code coverage to over 90%.",
				},
			},
		},
		Educations: []Education{
			{
				ID:          1,
				Institution: "Indian Institute of Technology, Bombay",
				Degree:      "Bachelor of Technology in Computer Science",
				Location:    "Mumbai",
				StartDate:   "Aug 2012",
				EndDate:     "May 2016",
			},
		},
		Projects: []Project{
			{
				ID:           1,
				Name:         "Real-Time Collaborative Code Editor",
				Description:  "A web-based code editor that allows multiple users to edit and run code snippets in real-time.",
				Technologies: []string{"React", "WebSockets", "Node.js", "Docker"},
				Link:         "github.com/priya/code-editor",
			},
			{
				ID:           2,
				Name:         "Personal Finance Dashboard",
				Description:  "A data visualization tool to track expenses and investments, built with Plaid API integration.",
				Technologies: []string{"Vue.js", "Chart.js", "Python (Flask)", "PostgreSQL"},
				Link:         "github.com/priya/finance-dash",
			},
		},
	}
	return d.WithIDFloor(3)
}
