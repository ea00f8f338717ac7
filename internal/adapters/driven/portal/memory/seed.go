package memory

import (
	"fmt"
	"time"

	"github.com/jorge2985/El-Academico/internal/core/domain"
)

type seedDoc struct {
	title      string
	author     string
	university string
	category   string
	date       string
	abstract   string
}

var seedDocs = []seedDoc{
	{"Redes neuronales para la detección temprana de sequías", "Lucía Fernández", "Universidad de Buenos Aires", "Ingeniería", "2024-05-14", "Modelo predictivo basado en imágenes satelitales."},
	{"Historia económica del Río de la Plata", "Martín Acosta", "Universidad de la República", "Economía", "2023-11-02", "Comercio y moneda entre 1776 y 1853."},
	{"Bioética en ensayos clínicos pediátricos", "Carla Méndez", "Universidad Nacional de Córdoba", "Medicina", "2024-02-20", "Consentimiento informado y asentimiento del menor."},
	{"Derecho ambiental y pueblos originarios", "Julián Paz", "Universidad Nacional de La Plata", "Derecho", "2023-08-17", "Consulta previa en proyectos extractivos."},
	{"Poética del exilio en la narrativa chilena", "Valentina Rojas", "Universidad de Chile", "Humanidades", "2024-06-01", "Memoria y desplazamiento en novelas de posdictadura."},
	{"Catálisis heterogénea con óxidos de cerio", "Diego Herrera", "Universidad Nacional Autónoma de México", "Ciencias", "2024-01-09", "Síntesis y caracterización de nanopartículas."},
	{"Microfinanzas y desarrollo rural", "Sofía Castro", "Pontificia Universidad Javeriana", "Economía", "2022-10-25", "Evaluación de impacto en comunidades andinas."},
	{"Resistencia antimicrobiana en hospitales públicos", "Andrés Molina", "Universidad de Buenos Aires", "Medicina", "2023-04-11", "Vigilancia epidemiológica 2018-2022."},
	{"Puentes atirantados: análisis sísmico", "Gabriela Torres", "Universidad Técnica Federico Santa María", "Ingeniería", "2022-07-30", "Respuesta dinámica bajo registros reales."},
	{"Filosofía del lenguaje en Wittgenstein tardío", "Tomás Ibarra", "Universidad de la República", "Humanidades", "2023-03-05", "Juegos de lenguaje y seguimiento de reglas."},
	{"Genómica de poblaciones de maíz nativo", "Renata Salas", "Universidad Nacional Autónoma de México", "Ciencias", "2024-04-22", "Diversidad genética y domesticación."},
	{"Contratos inteligentes y derecho civil", "Federico Luna", "Universidad de Chile", "Derecho", "2024-03-18", "Validez y ejecución de acuerdos en cadena de bloques."},
	{"Inflación y expectativas en economías emergentes", "Camila Vega", "Universidad de San Andrés", "Economía", "2024-05-03", "Un enfoque de vectores autorregresivos."},
	{"Telemedicina en zonas rurales", "Pablo Ríos", "Universidad Nacional de Córdoba", "Medicina", "2022-12-12", "Adopción y resultados clínicos."},
	{"Optimización de redes eléctricas inteligentes", "Mariana Ortiz", "Universidad Nacional de Colombia", "Ingeniería", "2023-09-27", "Programación estocástica para la demanda."},
	{"Arqueología del paisaje en la Patagonia", "Ignacio Cabrera", "Universidad Nacional de La Plata", "Humanidades", "2022-05-19", "Ocupación humana en el Holoceno."},
	{"Física de plasmas en reactores de fusión", "Elena Navarro", "Instituto Balseiro", "Ciencias", "2023-06-08", "Inestabilidades magnetohidrodinámicas."},
	{"Responsabilidad penal de personas jurídicas", "Hernán Domínguez", "Universidad de Buenos Aires", "Derecho", "2023-01-24", "Análisis comparado en América Latina."},
	{"Economía circular en la industria textil", "Paula Guzmán", "Pontificia Universidad Católica del Perú", "Economía", "2024-02-07", "Modelos de negocio y reciclaje."},
	{"Salud mental en estudiantes universitarios", "Rodrigo Peña", "Universidad de Chile", "Medicina", "2024-06-10", "Prevalencia de ansiedad y depresión."},
	{"Robótica colaborativa en manufactura", "Natalia Suárez", "Universidad Técnica Federico Santa María", "Ingeniería", "2024-01-29", "Seguridad y ergonomía en la interacción humano-robot."},
	{"Ecología de humedales altoandinos", "Joaquín Morales", "Universidad Mayor de San Andrés", "Ciencias", "2022-11-15", "Dinámica hídrica y biodiversidad."},
	{"Educación intercultural bilingüe", "Daniela Quispe", "Pontificia Universidad Católica del Perú", "Humanidades", "2023-10-03", "Políticas públicas y práctica docente."},
	{"Derecho a la protección de datos personales", "Sebastián Álvarez", "Universidad Nacional de Colombia", "Derecho", "2024-04-30", "Consentimiento y transferencias internacionales."},
	{"Vacunas de ARN mensajero: revisión", "Florencia Giménez", "Universidad de Buenos Aires", "Medicina", "2023-12-19", "Mecanismos, eficacia y seguridad."},
	{"Modelado hidrológico de cuencas urbanas", "Lucas Benítez", "Universidad de la República", "Ingeniería", "2023-05-21", "Drenaje sostenible y riesgo de inundación."},
}

var seedPosts = []domain.BlogPost{
	{ID: "post-1", Title: "Cómo citar correctamente en tu tesis", Author: "Equipo El Académico", Excerpt: "Guía práctica de normas APA y Vancouver."},
	{ID: "post-2", Title: "Nuevas universidades se suman al repositorio", Author: "Equipo El Académico", Excerpt: "Ya son más de treinta instituciones."},
	{ID: "post-3", Title: "Consejos para escribir un buen resumen", Author: "María Sol Rivas", Excerpt: "Claridad, estructura y palabras clave."},
	{ID: "post-4", Title: "Acceso abierto: qué es y por qué importa", Author: "Equipo El Académico", Excerpt: "Licencias, derechos y visibilidad."},
}

var seedPostDates = []string{"2024-06-05", "2024-05-20", "2024-04-02", "2024-02-14"}

// SeedDocuments returns the built-in sample documents.
func SeedDocuments() []domain.DocumentSummary {
	docs := make([]domain.DocumentSummary, 0, len(seedDocs))
	for i, s := range seedDocs {
		published, err := time.Parse(domain.DateLayout, s.date)
		if err != nil {
			panic(fmt.Sprintf("seed document %d: %v", i, err))
		}
		id := fmt.Sprintf("doc-%02d", i+1)
		docs = append(docs, domain.DocumentSummary{
			ID:          id,
			Title:       s.title,
			Authors:     []string{s.author},
			University:  s.university,
			Category:    s.category,
			Abstract:    s.abstract,
			URL:         "/documents/" + id,
			PublishedAt: published,
		})
	}
	return docs
}

// SeedPosts returns the built-in sample blog posts.
func SeedPosts() []domain.BlogPost {
	posts := make([]domain.BlogPost, len(seedPosts))
	for i, p := range seedPosts {
		published, err := time.Parse(domain.DateLayout, seedPostDates[i])
		if err != nil {
			panic(fmt.Sprintf("seed post %d: %v", i, err))
		}
		p.PublishedAt = published
		p.URL = "/blog/" + p.ID
		posts[i] = p
	}
	return posts
}
