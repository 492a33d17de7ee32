package handlers

import (
	"context"
	"net/http"

	"bazar_back_end/internal/cache"
	"bazar_back_end/internal/database"
	"bazar_back_end/internal/models"
	"bazar_back_end/internal/seed"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

func loadSlides(ctx context.Context) []models.Slide {
	if cached, ok := cache.GetSlides(ctx); ok {
		return cached
	}

	slides := scanSlides()
	if len(slides) == 0 {
		return seed.Slides()
	}

	cache.SetSlides(ctx, slides)
	return slides
}

func scanSlides() []models.Slide {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil
	}

	iter := session.Query(`SELECT slide_id, image_url, title, subtitle, button_text FROM slides`).Iter()

	var slides []models.Slide
	var s models.Slide

	for iter.Scan(&s.ID, &s.ImageURL, &s.Title, &s.Subtitle, &s.ButtonText) {
		slides = append(slides, s)
		s = models.Slide{}
	}

	if err := iter.Close(); err != nil {
		return nil
	}
	return slides
}

//
// 🟢 GET /api/slides
//
func GetSlides(c *gin.Context) {
	c.JSON(http.StatusOK, loadSlides(context.Background()))
}

//
// ✏️ POST /api/admin/slides
//
func CreateSlide(c *gin.Context) {
	var s models.Slide
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	s.ID = gocql.TimeUUID()

	query := `INSERT INTO slides (slide_id, image_url, title, subtitle, button_text) VALUES (?, ?, ?, ?, ?)`
	if err := session.Query(query, s.ID, s.ImageURL, s.Title, s.Subtitle, s.ButtonText).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création slide: " + err.Error()})
		return
	}

	cache.InvalidateSlides(context.Background())

	c.JSON(http.StatusCreated, s)
}

//
// ✏️ PUT /api/admin/slides/:id
//
func UpdateSlide(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID slide invalide"})
		return
	}

	var s models.Slide
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var existing gocql.UUID
	if err := session.Query(`SELECT slide_id FROM slides WHERE slide_id = ?`, id).Scan(&existing); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Slide introuvable"})
		return
	}

	s.ID = id
	query := `UPDATE slides SET image_url = ?, title = ?, subtitle = ?, button_text = ? WHERE slide_id = ?`
	if err := session.Query(query, s.ImageURL, s.Title, s.Subtitle, s.ButtonText, s.ID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour slide: " + err.Error()})
		return
	}

	cache.InvalidateSlides(context.Background())

	c.JSON(http.StatusOK, s)
}

//
// ❌ DELETE /api/admin/slides/:id
//
func DeleteSlide(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID slide invalide"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := session.Query(`DELETE FROM slides WHERE slide_id = ?`, id).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression slide: " + err.Error()})
		return
	}

	cache.InvalidateSlides(context.Background())

	c.JSON(http.StatusOK, gin.H{"message": "Slide supprimée"})
}
