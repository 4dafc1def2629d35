package main

import (
	"log"
	"os"

	"shared-notes-be/internal/model"
	"shared-notes-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds two demo users, a handful of notes with tags and a share, so a
// fresh environment has data to poke at.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding demo data...")

	alice := seedUser(db, "alice", "password123")
	bob := seedUser(db, "bob", "password123")

	workTag := seedTag(db, "work")
	ideasTag := seedTag(db, "ideas")

	meetingNote := seedNote(db, alice, "Team meeting notes", "Discussed the Q3 roadmap.", false, workTag)
	seedNote(db, alice, "Side project ideas", "A CLI for tracking reading lists.", false, ideasTag)
	seedNote(db, bob, "Public changelog", "v0.2: tags and sharing landed.", true)

	seedShare(db, meetingNote, bob, "read")

	color.Green("Seeding completed.")
}

func seedUser(db *gorm.DB, username, password string) *model.User {
	var existing model.User
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		color.Yellow("User '%s' already exists, skipping...", username)
		return &existing
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error hashing password for '%s': %v", username, err)
	}

	user := model.User{
		Id:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Error creating user '%s': %v", username, err)
	}
	color.Green("Created user: %s", username)
	return &user
}

func seedTag(db *gorm.DB, name string) *model.Tag {
	var existing model.Tag
	if err := db.Where("name = ?", name).First(&existing).Error; err == nil {
		return &existing
	}

	tag := model.Tag{Id: uuid.New(), Name: name}
	if err := db.Create(&tag).Error; err != nil {
		log.Fatalf("Error creating tag '%s': %v", name, err)
	}
	color.Green("Created tag: %s", name)
	return &tag
}

func seedNote(db *gorm.DB, owner *model.User, title, content string, isPublic bool, tags ...*model.Tag) *model.Note {
	var existing model.Note
	if err := db.Where("title = ? AND owner_id = ?", title, owner.Id).First(&existing).Error; err == nil {
		color.Yellow("Note '%s' already exists, skipping...", title)
		return &existing
	}

	note := model.Note{
		Id:       uuid.New(),
		Title:    title,
		Content:  content,
		IsPublic: isPublic,
		OwnerId:  owner.Id,
		Tags:     tags,
	}
	if err := db.Create(&note).Error; err != nil {
		log.Fatalf("Error creating note '%s': %v", title, err)
	}
	color.Green("Created note: %s", title)
	return &note
}

func seedShare(db *gorm.DB, note *model.Note, user *model.User, permission string) {
	var existing model.NoteShare
	if err := db.Where("note_id = ? AND user_id = ?", note.Id, user.Id).First(&existing).Error; err == nil {
		return
	}

	share := model.NoteShare{
		Id:         uuid.New(),
		NoteId:     note.Id,
		UserId:     user.Id,
		Permission: permission,
	}
	if err := db.Create(&share).Error; err != nil {
		log.Fatalf("Error sharing note '%s': %v", note.Title, err)
	}
	color.Green("Shared note '%s' with %s (%s)", note.Title, user.Username, permission)
}
