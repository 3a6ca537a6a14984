package conversation

import (
	"fmt"
	"strings"
)

func majorDetailPrompt(major string) string {
	return fmt.Sprintf(`Provide detailed information about the %s major:

<h2>PROGRAM OVERVIEW</h2>
• Program description and focus
• Key features and requirements
• Typical duration

<h2>CORE SKILLS</h2>
• Technical abilities developed
• Professional competencies
• Essential knowledge areas

<h2>COURSEWORK</h2>
• Foundation courses
• Advanced topics
• Available specializations

<h2>CAREER PATHS</h2>
• Entry-level positions
• Career progression
• Industry opportunities`, major)
}

func collegeOverviewPrompt(college string) string {
	return fmt.Sprintf(`Provide verified information about %s in this format:

<h2>INSTITUTION OVERVIEW</h2>
- Type: [Public/Private]
- Location: [City, State]
- Total Enrollment: [Approximate number]
- Campus Setting: [Urban/Suburban/Rural]

<h2>ACADEMIC PROFILE</h2>
- Areas of Study
- Notable Programs
- Class Size
- Teaching Focus`, college)
}

func collegeMajorPrompt(major, college string) string {
	return fmt.Sprintf(`Information about the %s program at %s:

<h2>%s PROGRAM</h2>
- Program Availability
- Department Information
- Key Features
- Career Support Services`, major, college, strings.ToUpper(major))
}

func collegeAdmissionsPrompt(college string) string {
	return fmt.Sprintf(`Basic admission information for %s:

<h2>ADMISSION INFORMATION</h2>
- Application Process
- Key Deadlines
- Required Documents
- Contact Details`, college)
}
