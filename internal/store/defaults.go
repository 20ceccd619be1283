package store

import "github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/model"

// DefaultTemplates seeds a fresh data file with the academy's standard
// announcement texts. Staff edit these through the dashboard afterwards.
func DefaultTemplates() map[model.TrainingType]model.Template {
	return map[model.TrainingType]model.Template{
		model.TrainingTheorie: {
			Title: "Theorie-Ausbildung",
			Intro: "Eine Theorie-Ausbildung findet statt. Hier sind die wichtigsten Informationen.",
			Topics: []string{
				"1. Begrüßung",
				"2. Einführung Theorie",
				"3. Rechtliche Grundlagen",
				"4. Theoretische Prüfung",
				"5. Auswertung",
			},
			AdditionalInfo: []string{
				"Reagiere mit 📝 um teilzunehmen.",
				"Bei **Verspätung** wird eine Teilnahme nur schwer möglich sein.",
			},
			Grading: []string{
				"Sehr gut: 50 – 45",
				"Gut: 44 – 40",
				"Befriedigend: 39 – 33",
				"Ausreichend: 32 – 25",
				"Mangelhaft: 24 – 15",
				"Ungenügend: 14 – 0",
			},
			Benefits: []string{
				"In dieser Theorie-Ausbildung werden dir die ersten wichtigsten Kenntnisse beigebracht.",
				"Jeder der das Training erfolgreich absolviert, bekommt die {passed_role} Rolle.",
				"Du kannst nun an der Grundausbildung teilnehmen.",
			},
		},
		model.TrainingGrund: {
			Title: "Grund-Ausbildung",
			Intro: "Eine Grundausbildung findet statt. Hier sind die wichtigsten Informationen.",
			Topics: []string{
				"1. Wiederholung",
				"2. Statusmeldungen/Funkausbildung",
				"3. Absperrtraining",
				"4. Geiselnahme-Szenarien",
				"5. Räuber-Simulation",
				"6. Schusstraining",
				"7. Auswertung",
			},
			AdditionalInfo: []string{
				"Reagiere mit 📝 um teilzunehmen.",
				"Bei **Verspätung** wird eine Teilnahme nur schwer möglich sein.",
			},
			Grading: []string{
				"Sehr gut: 50 – 45",
				"Gut: 44 – 40",
				"Befriedigend: 39 – 33",
				"Ausreichend: 32 – 25",
				"Mangelhaft: 24 – 15",
				"Ungenügend: 14 – 0",
			},
			Benefits: []string{
				"In dieser Grundausbildung werden dir wichtige Grundkenntnisse für den Polizeidienst beigebracht.",
				"Jeder der das Training erfolgreich absolviert, bekommt die {passed_role} Rolle.",
				"Du besitzt nun den Dienstgrad **Polizeimeister-Anwärter**.",
			},
		},
		model.TrainingStvo: {
			Title: "StVO-Ausbildung",
			Intro: "Eine StVO Ausbildung findet statt. Hier sind die wichtigsten Informationen.",
			Topics: []string{
				"1. Begrüßung",
				"2. Verkehrsschilder",
				"3. Bußgeldkatalog",
				"4. Fit-Manöver",
				"5. Straßenverkehrsordnung (StVO)",
				"6. Praktischer Teil",
				"7. Quiz",
			},
			AdditionalInfo: []string{
				"Reagiere mit 📝 um teilzunehmen.",
				"Bei **Verspätung** wird eine Teilnahme nur schwer möglich sein.",
			},
			Grading: []string{
				"Sehr gut: 25 – 22",
				"Gut: 21 – 17",
				"Befriedigend: 16 – 13",
				"Ausreichend: 12 – 9",
				"Mangelhaft: 8 – 4",
				"Ungenügend: 3 – 0",
			},
			Benefits: []string{
				"In dieser StVO-Ausbildung werden dir die letzten wichtigsten Kenntnisse für den Polizeidienst beigebracht.",
				"Jeder der das Training erfolgreich absolviert, bekommt die {passed_role} Rolle.",
				"Du besitzt anschließend den Dienstgrad **Polizeimeister**.",
			},
		},
	}
}
