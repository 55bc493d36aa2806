package bot

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"santabox/bot/common"
	"santabox/domain/entities"
	"santabox/domain/events"
	"santabox/domain/interfaces"
)

// subscribeNotifications wires the DM notifications that follow committed
// transactions: owners hear about new participants, givers learn who they
// drew. Events only reach the bus after commit, so a rolled back draw never
// leaks a DM.
func (b *Bot) subscribeNotifications(uowFactory interfaces.UnitOfWorkFactory) {
	b.eventBus.Subscribe(events.EventTypeParticipantJoined, func(ctx context.Context, event events.Event) {
		e, ok := event.(events.ParticipantJoinedEvent)
		if !ok {
			return
		}
		// Owners who joined their own box already know
		if e.UserID == e.OwnerID {
			return
		}
		common.TrySendDM(b.session, e.OwnerID,
			fmt.Sprintf("🎄 **%s** joined your box **%s**.", e.Name, e.BoxName))
	})

	b.eventBus.Subscribe(events.EventTypeDrawCompleted, func(ctx context.Context, event events.Event) {
		e, ok := event.(events.DrawCompletedEvent)
		if !ok {
			return
		}
		b.notifyDrawResults(ctx, uowFactory, e)
	})

	// The box row is gone once this fires; release the photo file with it
	b.eventBus.Subscribe(events.EventTypeBoxDeleted, func(ctx context.Context, event events.Event) {
		e, ok := event.(events.BoxDeletedEvent)
		if !ok || e.PhotoRef == nil {
			return
		}
		if err := b.photos.Remove(*e.PhotoRef); err != nil {
			log.WithError(err).WithFields(log.Fields{
				"boxID":    e.BoxID,
				"photoRef": *e.PhotoRef,
			}).Warn("Failed to remove photo of deleted box")
		}
	})
}

// notifyDrawResults DMs every giver the name, address and wish of the
// participant they drew. Delivery is best effort; a giver with closed DMs
// does not block the others.
func (b *Bot) notifyDrawResults(ctx context.Context, uowFactory interfaces.UnitOfWorkFactory, e events.DrawCompletedEvent) {
	receivers, err := b.loadParticipants(ctx, uowFactory, e.BoxID)
	if err != nil {
		log.WithError(err).WithField("boxID", e.BoxID).Error("Failed to load participants for draw notifications")
		return
	}

	for _, pair := range e.Pairs {
		receiver, ok := receivers[pair.ReceiverID]
		if !ok {
			log.WithFields(log.Fields{
				"boxID":      e.BoxID,
				"receiverID": pair.ReceiverID,
			}).Warn("Drawn receiver has no enrollment record")
			continue
		}
		common.TrySendDM(b.session, pair.GiverID,
			common.FormatAssignmentDM(e.BoxName, receiver.Name, receiver.Address, receiver.Wish))
	}
}

func (b *Bot) loadParticipants(ctx context.Context, uowFactory interfaces.UnitOfWorkFactory, boxID int64) (map[int64]*entities.Participant, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	participants, err := uow.ParticipantRepository().ListByBox(ctx, boxID)
	if err != nil {
		return nil, err
	}

	byUser := make(map[int64]*entities.Participant, len(participants))
	for _, p := range participants {
		byUser[p.UserID] = p
	}
	return byUser, nil
}
