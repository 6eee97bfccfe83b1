package helpers

import (
	"fmt"
	"strings"
)

// Document and blob paths share the same layout:
//
//	users/{userId}                          user document
//	users/{userId}/boxes/{boxId}            box document
//	users/{userId}/boxes/{boxId}/photo_{i}.jpg  photo object
const UsersCollection = "users"

func UserDocPath(userID string) string {
	return fmt.Sprintf("%s/%s", UsersCollection, userID)
}

func BoxCollectionPath(userID string) string {
	return fmt.Sprintf("%s/%s/boxes", UsersCollection, userID)
}

func BoxDocPath(userID, boxID string) string {
	return fmt.Sprintf("%s/%s/boxes/%s", UsersCollection, userID, boxID)
}

// BoxBlobPrefix is the object-store prefix holding every photo of one box.
func BoxBlobPrefix(userID, boxID string) string {
	return fmt.Sprintf("%s/%s/boxes/%s/", UsersCollection, userID, boxID)
}

func UserBlobPrefix(userID string) string {
	return fmt.Sprintf("%s/%s/boxes/", UsersCollection, userID)
}

func PhotoObjectPath(userID, boxID string, index int) string {
	return fmt.Sprintf("%s/%s/boxes/%s/photo_%d.jpg", UsersCollection, userID, boxID, index)
}

// ParentPath returns the path minus its last segment, or "" for a root path.
func ParentPath(path string) string {
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return ""
	}
	return path[:idx]
}

// BoxIDFromObjectPath extracts the box id out of a photo object path.
// Returns "" when the path does not look like a box photo.
func BoxIDFromObjectPath(objectPath string) string {
	parts := strings.Split(objectPath, "/")
	if len(parts) < 5 || parts[0] != UsersCollection || parts[2] != "boxes" {
		return ""
	}
	return parts[3]
}
