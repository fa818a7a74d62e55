// Package catalog holds the static in-memory data the service runs on.
// There is no database: clinics, procedures and reviews are fixed demo
// records in the style of the platform's mock catalog.
package catalog

import (
	"github.com/shopspring/decimal"

	"vittahub/internal/domain/entity"
)

var defaultReviews = []entity.Review{
	{ID: 1, Name: "Ana Silva", Rating: 5, Date: "2024-01-15", Comment: "Excelente atendimento! O médico foi muito atencioso e profissional."},
	{ID: 2, Name: "Carlos Santos", Rating: 5, Date: "2024-01-10", Comment: "Clínica muito bem organizada e limpa. Recomendo!"},
	{ID: 3, Name: "Maria Costa", Rating: 4, Date: "2024-01-05", Comment: "Bom atendimento, mas poderia ter mais horários disponíveis."},
}

var defaultOpeningHours = []entity.OpeningHours{
	{Days: "Seg - Sex", Hours: "08:00 - 18:00"},
	{Days: "Sáb", Hours: "08:00 - 12:00"},
}

// Procedures returns the fixed procedure catalog, prices in BRL
func Procedures() []entity.Procedure {
	return []entity.Procedure{
		{ID: 1, Name: "Consulta Cardiológica", Price: decimal.NewFromFloat(250.0), Description: "Avaliação completa do sistema cardiovascular"},
		{ID: 2, Name: "Eletrocardiograma (ECG)", Price: decimal.NewFromFloat(120.0), Description: "Exame para avaliar a atividade elétrica do coração"},
		{ID: 3, Name: "Teste Ergométrico", Price: decimal.NewFromFloat(350.0), Description: "Teste de esforço para avaliar a função cardíaca"},
		{ID: 4, Name: "Ecocardiograma", Price: decimal.NewFromFloat(280.0), Description: "Ultrassom do coração para avaliar estrutura e função"},
		{ID: 5, Name: "Holter 24h", Price: decimal.NewFromFloat(180.0), Description: "Monitoramento contínuo do ritmo cardíaco por 24 horas"},
	}
}

// Clinics returns the fixed clinic catalog. Clinics without an explicit
// professional roster get one synthesized from their specialties at read
// time.
func Clinics() []entity.Clinic {
	return []entity.Clinic{
		{
			ID:          1,
			Name:        "Clínica CardioVida",
			Category:    "Cardiologia",
			Description: "Centro especializado em saúde cardiovascular com equipamentos de última geração.",
			Address:     "Av. Paulista, 1000 - São Paulo, SP",
			Phone:       "(11) 3456-7890",
			Rating:      4.8,
			Specialties: []string{"Cardiologia", "Clínica Geral", "Angiologia"},
			Professionals: []entity.Professional{
				{ID: 1, Name: "Dr. Roberto Campos", Specialty: "Cardiologia", Rating: 4.9, ImageURL: "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=300&h=300&fit=crop&crop=faces", Origin: entity.ProfessionalOriginSupplied},
				{ID: 2, Name: "Dra. Helena Duarte", Specialty: "Cardiologia", Rating: 4.7, ImageURL: "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=300&h=300&fit=crop&crop=faces", Origin: entity.ProfessionalOriginSupplied},
				{ID: 3, Name: "Dr. Fábio Siqueira", Specialty: "Angiologia", Rating: 4.6, Origin: entity.ProfessionalOriginSupplied},
			},
			Reviews:      defaultReviews,
			OpeningHours: defaultOpeningHours,
		},
		{
			ID:           2,
			Name:         "Instituto Bem Estar",
			Category:     "Psicologia",
			Description:  "Atendimento psicológico e psiquiátrico humanizado para todas as idades.",
			Address:      "Rua Augusta, 255 - São Paulo, SP",
			Phone:        "(11) 2233-4455",
			Rating:       4.6,
			Specialties:  []string{"Psicologia", "Psiquiatria", "Neurologia"},
			Reviews:      defaultReviews,
			OpeningHours: defaultOpeningHours,
		},
		{
			ID:           3,
			Name:         "OrtoCenter Ipanema",
			Category:     "Ortopedia",
			Description:  "Diagnóstico e tratamento de lesões ortopédicas e esportivas.",
			Address:      "Ipanema - Rio de Janeiro, RJ",
			Phone:        "(21) 3322-1100",
			Rating:       4.7,
			Specialties:  []string{"Ortopedia", "Fisioterapia", "Reumatologia"},
			Reviews:      defaultReviews,
			OpeningHours: defaultOpeningHours,
		},
		{
			ID:           4,
			Name:         "Sorriso & Cia Odontologia",
			Category:     "Odontologia",
			Description:  "Clínica odontológica completa, da prevenção à reabilitação oral.",
			Address:      "Av. Afonso Pena, 1500 - Belo Horizonte, MG",
			Phone:        "(31) 3888-7766",
			Rating:       4.9,
			Specialties:  []string{"Odontologia", "Ortodontia", "Implantodontia"},
			Reviews:      defaultReviews,
			OpeningHours: defaultOpeningHours,
		},
		{
			ID:           5,
			Name:         "Visão Plena Oftalmologia",
			Category:     "Oftalmologia",
			Description:  "Exames de vista, cirurgias refrativas e acompanhamento oftalmológico.",
			Address:      "Rua XV de Novembro, 700 - Curitiba, PR",
			Phone:        "(41) 3030-2020",
			Rating:       4.5,
			Specialties:  []string{"Oftalmologia", "Clínica Geral"},
			Reviews:      defaultReviews,
			OpeningHours: defaultOpeningHours,
		},
		{
			ID:           6,
			Name:         "Clínica Vida Leve",
			Category:     "Clínica Geral",
			Description:  "Medicina preventiva, check-ups e acompanhamento multidisciplinar.",
			Address:      "Av. Ipiranga, 950 - Porto Alegre, RS",
			Phone:        "(51) 3555-4433",
			Rating:       4.4,
			Specialties:  []string{"Clínica Geral", "Nutrição", "Endocrinologia", "Dermatologia"},
			Reviews:      defaultReviews,
			OpeningHours: defaultOpeningHours,
		},
		{
			ID:           7,
			Name:         "CardioCenter Rio",
			Category:     "Cardiologia",
			Description:  "Equipe cardiológica de referência com atendimento de urgência.",
			Address:      "Botafogo - Rio de Janeiro, RJ",
			Phone:        "(21) 2544-8899",
			Rating:       4.3,
			Specialties:  []string{"Cardiologia", "Angiologia"},
			Reviews:      defaultReviews,
			OpeningHours: defaultOpeningHours,
		},
		{
			ID:           8,
			Name:         "Espaço Materno Infantil",
			Category:     "Pediatria",
			Description:  "Cuidado integral para gestantes, bebês e crianças.",
			Address:      "Av. Boa Viagem, 3000 - Recife, PE",
			Phone:        "(81) 3467-5544",
			Rating:       4.8,
			Specialties:  []string{"Pediatria", "Ginecologia", "Obstetrícia"},
			Reviews:      defaultReviews,
			OpeningHours: defaultOpeningHours,
		},
	}
}
