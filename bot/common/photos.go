package common

import (
	"santabox/domain/entities"
	"santabox/photostore"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// TrySendBoxPhoto DMs the stored photo of a box, best effort. Boxes without
// a photo, and references whose file has gone missing, are skipped quietly;
// the surrounding conversation never depends on the photo arriving.
func TrySendBoxPhoto(s *discordgo.Session, photos *photostore.Store, userID int64, box *entities.Box) {
	if !box.HasPhoto() {
		return
	}
	ref := *box.PhotoRef

	if !photos.Exists(ref) {
		log.WithFields(log.Fields{
			"boxID":    box.ID,
			"photoRef": ref,
		}).Warn("Box photo file is missing")
		return
	}

	file, err := photos.Open(ref)
	if err != nil {
		log.WithError(err).WithField("photoRef", ref).Warn("Failed to open box photo")
		return
	}
	defer file.Close()

	if err := SendDMFile(s, userID, "", ref, file); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"userID":   userID,
			"photoRef": ref,
		}).Warn("Failed to deliver box photo")
	}
}
