package handlers

import "wrist_surgery_app_go/models"

const heroDelaySeconds = 5

// landingContent is the static copy of the wrist surgery page
var landingContent = models.PageContent{
	Headline:   "Wrist Surgery in Malleshwaram, Bangalore",
	Doctor:     "Dr. Darshan Kumar A. Jain, Orthopedic Hand and Wrist Specialist",
	Clinic:     "Wrist Surgery Clinic, Malleshwaram",
	HeroImage:  "/static/images/wrist-surgery-hero.png",
	HeroDelayS: heroDelaySeconds,
	Symptoms: []models.Symptom{
		{
			Image: "/static/images/wrist-injury-1.png",
			Name:  "Persistent wrist pain or tenderness",
			Alt:   "Wrist injury diagnosis and wrist pain treatment in Malleshwaram Bangalore",
		},
		{
			Image: "/static/images/wrist-injury-2.png",
			Name:  "Swelling around the wrist joint",
			Alt:   "Assessment of wrist pain by wrist surgeon in Bangalore clinic",
		},
		{
			Image: "/static/images/wrist-injury-3.png",
			Name:  "Stiffness or reduced wrist movement",
			Alt:   "Non surgical wrist pain treatment by hand and wrist specialist Bangalore",
		},
		{
			Image: "/static/images/wrist-injury-4.png",
			Name:  "Weak grip strength or difficulty holding objects",
			Alt:   "Severe wrist injury requiring wrist fracture treatment in Bangalore",
		},
		{
			Image: "/static/images/wrist-injury-5.png",
			Name:  "Pain during work, typing, sports, or routine hand movement",
			Alt:   "Carpal tunnel surgery evaluation by wrist surgeon in Bangalore",
		},
	},
	Treatment: []models.TreatmentStep{
		{
			Image:       "/static/images/clinical-evaluation.png",
			Name:        "Clinical Evaluation",
			Description: "A detailed consultation, physical examination, and imaging tests such as X-rays or MRI help identify the cause of wrist pain or dysfunction.",
			Alt:         "Clinical evaluation for wrist pain treatment in Malleshwaram Bangalore",
		},
		{
			Image:       "/static/images/treatment-planning.png",
			Name:        "Treatment Planning",
			Description: "Based on the findings, the surgeon explains whether wrist surgery is required and discusses suitable treatment options.",
			Alt:         "Personalized wrist surgery treatment planning in Bangalore clinic",
		},
		{
			Image:       "/static/images/surgical-procedure.png",
			Name:        "Surgical Procedure",
			Description: "Wrist surgery may involve ligament repair, nerve decompression, fracture fixation, or joint correction. Procedures are performed under regional or general anesthesia for patient comfort.",
			Alt:         "Wrist surgery procedure by hand and wrist surgeon in Bangalore",
		},
		{
			Image:       "/static/images/post-surgery-care.png",
			Name:        "Post-Surgery Care",
			Description: "The wrist may be supported with a splint or brace. Pain control and wound care are closely monitored.",
			Alt:         "Post surgery care after wrist surgery in Malleshwaram Bangalore",
		},
		{
			Image:       "/static/images/rehabilitation-follow-up.png",
			Name:        "Rehabilitation & Follow-Up",
			Description: "Physiotherapy is advised to restore wrist movement, strength, and coordination. Follow-up visits help track recovery progress.",
			Alt:         "Rehabilitation follow up after wrist fracture treatment in Bangalore",
		},
	},
	WhyChoose: []models.Reason{
		{ID: 1, Name: "Ethical Treatment Approach", Description: "Wrist treatment decisions guided by clinical need, never pressure."},
		{ID: 2, Name: "Thorough Evaluation", Description: "Every wrist condition is carefully assessed before recommending surgery."},
		{ID: 3, Name: "Expert-Led Care", Description: "Dr. Darshan Kumar A. Jain ensures clarity and ethical decision-making."},
		{ID: 4, Name: "Continuity of Care", Description: "Patients receive guidance from consultation through recovery at our clinic in Malleshwaram, Bangalore, Karnataka."},
	},
	FAQs: []models.FAQ{
		{Question: "Is wrist surgery safe?", Answer: "Wrist surgery is generally safe when performed after proper evaluation. Risks and benefits are explained during consultation."},
		{Question: "Will wrist surgery be painful?", Answer: "Pain is usually well managed with medications and post-operative care."},
		{Question: "How long does recovery take after wrist surgery?", Answer: "Recovery varies. Light activities may resume in weeks, while full recovery may take longer."},
		{Question: "Is physiotherapy required after wrist surgery?", Answer: "Yes. Physiotherapy helps restore wrist movement, strength, and coordination safely."},
		{Question: "When can I return to work?", Answer: "Return to work depends on job type and recovery progress."},
		{Question: "Is surgery always needed for wrist pain?", Answer: "No. Many wrist conditions improve with non-surgical treatment. Wrist surgery is advised only when necessary."},
	},
}
