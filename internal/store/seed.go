package store

import (
	"github.com/shopspring/decimal"

	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/models"
)

// guestProfile is the identity present before any login action.
var guestProfile = models.UserProfile{
	DisplayName: "Invitado",
	Handle:      "@invitado",
	AvatarURL:   "https://i.pravatar.cc/150?u=invitado",
	IsPremium:   false,
}

// seedPosts builds the demo feed. Comment counts are derived from the
// seeded comments so the count-equals-length invariant holds from
// creation onward.
func seedPosts() []*models.Post {
	posts := []*models.Post{
		{
			ID:               "1",
			AuthorName:       "Sofía Macías",
			AuthorHandle:     "@sofia_macias",
			AvatarURL:        "https://i.pravatar.cc/150?u=sofia",
			Body:             "¡El IPC está en un punto de entrada interesante! Analicen sus stop-loss antes de entrar. 📈 #InversionesMX #BMV",
			CreatedAtLabel:   "hace 2h",
			IsVerifiedAuthor: true,
			LikeCount:        156,
			ShareCount:       42,
			ViewCountLabel:   "3.1k",
			Comments: []models.Comment{
				{ID: "c1", AuthorName: "Carlos Inversor", AvatarURL: "https://i.pravatar.cc/150?u=carlos", Body: "Totalmente de acuerdo, Sofía. Yo entré ayer con una posición pequeña en Cemex.", CreatedAtLabel: "hace 1h"},
				{ID: "c2", AuthorName: "Elena Vázquez", AvatarURL: "https://i.pravatar.cc/150?u=elena", Body: "¿Qué stop-loss recomiendas para una posición larga en este sector?", CreatedAtLabel: "hace 45m"},
			},
		},
		{
			ID:               "2",
			AuthorName:       "Daniel Martínez",
			AuthorHandle:     "@dan_finanzas",
			AvatarURL:        "https://i.pravatar.cc/150?u=daniel",
			Body:             "Con la última decisión de Banxico, las tasas de CETES se mantienen atractivas. Es momento de amarrar plazos largos (1 año) antes de que empiecen los recortes. 💸 #CETES #AhorroInteligente",
			CreatedAtLabel:   "hace 4h",
			IsVerifiedAuthor: true,
			LikeCount:        89,
			ShareCount:       20,
			ViewCountLabel:   "1.8k",
			Comments: []models.Comment{
				{ID: "c3", AuthorName: "Mariana R.", AvatarURL: "https://i.pravatar.cc/150?u=mariana", Body: "¿Crees que sea mejor que una SOFIPO ahorita?", CreatedAtLabel: "hace 2h"},
				{ID: "c4", AuthorName: "Daniel Martínez", AvatarURL: "https://i.pravatar.cc/150?u=daniel", Body: "Las SOFIPOs dan más, pero el riesgo soberano de CETES es imbatible para el fondo de emergencia.", CreatedAtLabel: "hace 1h"},
			},
		},
		{
			ID:               "3",
			AuthorName:       "Elena Vázquez",
			AuthorHandle:     "@elena_retiro",
			AvatarURL:        "https://i.pravatar.cc/150?u=elena",
			Body:             "Muchos me preguntan: ¿PPR o AFORE? Mi respuesta siempre es: ¡Ambos! Pero el beneficio fiscal del PPR (Art. 151) es una joya que no deben dejar pasar este año fiscal. 🛡️ #RetiroDigno #SAT",
			CreatedAtLabel:   "hace 6h",
			IsVerifiedAuthor: true,
			LikeCount:        210,
			ShareCount:       85,
			ViewCountLabel:   "5.4k",
			Comments: []models.Comment{
				{ID: "c5", AuthorName: "Ricardo Ruiz", AvatarURL: "https://i.pravatar.cc/150?u=ricardo", Body: "La deducción de impuestos es el rendimiento inmediato más grande que existe.", CreatedAtLabel: "hace 3h"},
			},
		},
		{
			ID:               "4",
			AuthorName:       "Ricardo Ruiz",
			AuthorHandle:     "@ric_trader",
			AvatarURL:        "https://i.pravatar.cc/150?u=ricardo",
			Body:             "El USD/MXN rompiendo soportes clave. El 'Super Peso' sigue sorprendiendo a muchos, pero ojo con las exportadoras en la BMV, sus márgenes están sufriendo. 🇲🇽🇺🇸 #TradingMX #SuperPeso",
			CreatedAtLabel:   "hace 8h",
			IsVerifiedAuthor: false,
			LikeCount:        45,
			ShareCount:       5,
			ViewCountLabel:   "900",
			Comments:         []models.Comment{},
		},
		{
			ID:               "5",
			AuthorName:       "Mónica Silva",
			AuthorHandle:     "@moni_inmuebles",
			AvatarURL:        "https://i.pravatar.cc/150?u=monica",
			Body:             "¿Vieron el nuevo reporte de Fibras? FIBRAMQ y FUNO traen dividendos interesantes este trimestre. El sector industrial sigue fuerte por el Nearshoring. 🏗️ #Fibras #BienesRaices",
			CreatedAtLabel:   "hace 10h",
			IsVerifiedAuthor: true,
			LikeCount:        132,
			ShareCount:       14,
			ViewCountLabel:   "2.5k",
			Comments: []models.Comment{
				{ID: "c6", AuthorName: "Luis Broker", AvatarURL: "https://i.pravatar.cc/150?u=luis", Body: "El nearshoring va para largo, excelente recomendación.", CreatedAtLabel: "hace 5h"},
			},
		},
	}
	for _, p := range posts {
		p.CommentCount = len(p.Comments)
	}
	return posts
}

func seedTransactions() []*models.Transaction {
	return []*models.Transaction{
		{ID: "1", CounterpartyLabel: "Walmart Express", Category: "Despensa", DateLabel: "Hoy", Amount: decimal.RequireFromString("-1240.50"), Icon: "🛒", Kind: models.KindExpense},
		{ID: "2", CounterpartyLabel: "Sueldo Mensual", Category: "Ingreso", DateLabel: "Hoy", Amount: decimal.RequireFromString("25000.00"), Icon: "💰", Kind: models.KindIncome},
		{ID: "t1", CounterpartyLabel: "Café", Category: "Alimentos", DateLabel: "Ayer", Amount: decimal.RequireFromString("-55.00"), Icon: "☕", Kind: models.KindExpense},
		{ID: "t2", CounterpartyLabel: "Café", Category: "Alimentos", DateLabel: "Hace 2 días", Amount: decimal.RequireFromString("-55.00"), Icon: "☕", Kind: models.KindExpense},
		{ID: "t3", CounterpartyLabel: "Café", Category: "Alimentos", DateLabel: "Hace 3 días", Amount: decimal.RequireFromString("-55.00"), Icon: "☕", Kind: models.KindExpense},
		{ID: "t4", CounterpartyLabel: "Café", Category: "Alimentos", DateLabel: "Hace 4 días", Amount: decimal.RequireFromString("-55.00"), Icon: "☕", Kind: models.KindExpense},
		{ID: "t5", CounterpartyLabel: "Café", Category: "Alimentos", DateLabel: "Hace 5 días", Amount: decimal.RequireFromString("-55.00"), Icon: "☕", Kind: models.KindExpense},
	}
}

func seedAdvisors() []models.Advisor {
	return []models.Advisor{
		{ID: "1", Name: "Alejandra Rossi", Role: "CPA CERTIFICADA", Rating: 4.9, Reviews: 124, HourlyRate: decimal.NewFromInt(1200), Tags: []string{"SAT", "Empresas"}, AvatarURL: "https://i.pravatar.cc/150?u=alejandra", IsVerified: true, Description: "Estratega fiscal para freelancers. Te ayudo a optimizar tus declaraciones y maximizar devoluciones."},
		{ID: "2", Name: "Carlos Méndez", Role: "ANALISTA AMIB L3", Rating: 5.0, Reviews: 42, HourlyRate: decimal.NewFromInt(2500), Tags: []string{"Bolsa", "CETES"}, AvatarURL: "https://i.pravatar.cc/150?u=carlos", IsVerified: true, Description: "Especialista en portafolios de inversión de bajo riesgo y alto rendimiento. AMIB Certificado."},
		{ID: "3", Name: "Elena Vázquez", Role: "RETIRO & PENSIONES", Rating: 4.8, Reviews: 89, HourlyRate: decimal.NewFromInt(1500), Tags: []string{"AFORE", "PPR"}, AvatarURL: "https://i.pravatar.cc/150?u=elena", IsVerified: true, Description: "Planificadora financiera enfocada en retiro digno y planes personales de retiro (PPR)."},
		{ID: "4", Name: "Ricardo Ruiz", Role: "CRYPTO ESTRATEGA", Rating: 4.7, Reviews: 156, HourlyRate: decimal.NewFromInt(1800), Tags: []string{"Bitcoin", "Ethereum"}, AvatarURL: "https://i.pravatar.cc/150?u=ricardo", IsVerified: false, Description: "Asesoría en activos digitales, seguridad de carteras y estrategias de inversión en cripto."},
		{ID: "5", Name: "Mónica Silva", Role: "BIENES RAÍCES MX", Rating: 4.9, Reviews: 210, HourlyRate: decimal.NewFromInt(2000), Tags: []string{"Preventas", "FIBRAS"}, AvatarURL: "https://i.pravatar.cc/150?u=monica", IsVerified: true, Description: "Experta en inversión inmobiliaria en México y análisis de FIBRAS en la bolsa mexicana."},
		{ID: "6", Name: "Javier López", Role: "COACH DE DEUDA", Rating: 5.0, Reviews: 33, HourlyRate: decimal.NewFromInt(800), Tags: []string{"Créditos", "TDC"}, AvatarURL: "https://i.pravatar.cc/150?u=javier", IsVerified: true, Description: "Te ayudo a salir de deudas de tarjetas de crédito y mejorar tu Score en el Buró de Crédito."},
	}
}
