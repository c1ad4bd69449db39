package topic

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/codesmentors/codesmentors-api/model"
	"github.com/codesmentors/codesmentors-api/utils/seo"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	for _, v := range []string{"DB_HOST", "DB_USER_NAME", "DB_PASSWORD", "DB_NAME", "DB_PORT"} {
		if os.Getenv(v) == "" {
			t.Skipf("%s not set, skipping database-backed test", v)
		}
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER_NAME"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Technology{}, &model.Topic{}))
	return db
}

func newTopicApp(db *gorm.DB) *fiber.App {
	handler := NewTopicHandler(db, nil)

	admin := &model.User{ID: 1, Name: "Admin", Email: "admin@x.com", Username: "admin", Role: model.RoleAdmin}

	app := fiber.New()
	app.Post("/topic/create", func(c *fiber.Ctx) error {
		c.Locals("user", admin)
		return c.Next()
	}, handler.CreateTopic)
	return app
}

func postTopic(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/topic/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	return resp
}

func TestCreateTopicMissingTechnologyWritesNothing(t *testing.T) {
	db := openTestDB(t)
	app := newTopicApp(db)

	unique := fmt.Sprintf("%d", time.Now().UnixNano())
	topicName := "Orphan Topic " + unique

	body := fmt.Sprintf(`{"name":%q,"technology":"no-such-technology-%s"}`, topicName, unique)
	resp := postTopic(t, app, body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.Topic{}).Where("name = ?", topicName).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateTopicAppendsParentReference(t *testing.T) {
	db := openTestDB(t)
	app := newTopicApp(db)

	unique := fmt.Sprintf("%d", time.Now().UnixNano())
	techName := "Tech " + unique
	topicName := "Topic " + unique

	technology := model.Technology{
		Name:        techName,
		Slug:        seo.Slugify(techName),
		Topics:      datatypes.NewJSONSlice([]model.TopicRef{}),
		IsPublished: true,
	}
	require.NoError(t, db.Create(&technology).Error)
	t.Cleanup(func() {
		db.Unscoped().Where("name = ?", topicName).Delete(&model.Topic{})
		db.Unscoped().Delete(&technology)
	})

	body := fmt.Sprintf(`{"name":%q,"technology":%q}`, topicName, technology.Slug)
	resp := postTopic(t, app, body)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var topic model.Topic
	require.NoError(t, db.Where("name = ?", topicName).First(&topic).Error)
	assert.Equal(t, technology.ID, topic.TechnologyID)
	assert.Equal(t, seo.Slugify(topicName), topic.Slug)

	// parent's denormalized list gained the reference in the same commit
	var reloaded model.Technology
	require.NoError(t, db.First(&reloaded, technology.ID).Error)
	require.Len(t, []model.TopicRef(reloaded.Topics), 1)
	assert.Equal(t, topic.ID, reloaded.Topics[0].ID)
	assert.Equal(t, topic.Slug, reloaded.Topics[0].Slug)
}
