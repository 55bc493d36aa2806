package manage

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"santabox/bot/common"
	"santabox/domain/entities"
	"santabox/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// buildParticipantsCSV renders the enrollment list as CSV
func buildParticipantsCSV(participants []*entities.Participant) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"user_id", "name", "address", "wish"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, p := range participants {
		record := []string{
			strconv.FormatInt(p.UserID, 10),
			p.Name,
			p.Address,
			p.Wish,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func (f *Feature) handleExportButton(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	ctx := context.Background()

	_, boxID, ok := f.authorizeOwner(s, i, customID, componentExport, interfaces.ActionExportParticipants)
	if !ok {
		return
	}

	participants, err := f.participantsOf(ctx, boxID)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to list participants for export"))
		return
	}

	if len(participants) == 0 {
		common.RespondWithError(s, i, "Nobody has joined this box yet, nothing to export.")
		return
	}

	content, err := buildParticipantsCSV(participants)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to build CSV"))
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("Participants of box %d:", boxID),
			Files: []*discordgo.File{
				{
					Name:        fmt.Sprintf("box_%d_participants.csv", boxID),
					ContentType: "text/csv",
					Reader:      bytes.NewReader(content),
				},
			},
		},
	})
	if err != nil {
		log.WithError(err).Error("Failed to send CSV export")
	}
}
