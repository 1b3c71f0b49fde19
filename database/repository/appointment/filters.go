package appointmentRepo

import (
	"time"

	"salonbook/models"
	"salonbook/services/availability"

	"go.mongodb.org/mongo-driver/bson"
)

var blockingStatuses = []models.AppointmentStatus{availability.StatusPending, availability.StatusConfirmed}

// overlapFilter matches blocking appointments whose [startTime, endTime) intersects [start, end).
func overlapFilter(salonID, date string, start, end models.TimeOfDay) bson.M {
	return bson.M{
		"salonId":   salonID,
		"date":      date,
		"status":    bson.M{"$in": blockingStatuses},
		"startTime": bson.M{"$lt": end},
		"endTime":   bson.M{"$gt": start},
	}
}

// dayLockFilter selects the lock document serializing bookings of one salon day.
func dayLockFilter(salonID, date string) bson.M {
	return bson.M{"salonId": salonID, "date": date}
}

// dayLockUpdate writes the lock document so concurrent transactions on the same day conflict.
func dayLockUpdate(now time.Time) bson.M {
	return bson.M{
		"$inc": bson.M{"version": 1},
		"$set": bson.M{"updatedAt": now},
	}
}

// endedFilter matches confirmed appointments that finished at or before the cutoff.
func endedFilter(c Cutoff) bson.M {
	return bson.M{
		"status": availability.StatusConfirmed,
		"$or": bson.A{
			bson.M{"date": bson.M{"$lt": c.Date}},
			bson.M{"date": c.Date, "endTime": bson.M{"$lte": c.Minute}},
		},
	}
}

// futureGuestFilter matches the guest's blocking appointments that start after the cutoff.
func futureGuestFilter(guestID string, c Cutoff) bson.M {
	return bson.M{
		"guestId": guestID,
		"status":  bson.M{"$in": blockingStatuses},
		"$or": bson.A{
			bson.M{"date": bson.M{"$gt": c.Date}},
			bson.M{"date": c.Date, "startTime": bson.M{"$gt": c.Minute}},
		},
	}
}

func dateRange(fromDate, toDate string) bson.M {
	r := bson.M{}
	if fromDate != "" {
		r["$gte"] = fromDate
	}
	if toDate != "" {
		r["$lte"] = toDate
	}
	return r
}

// CutoffAt splits t, already in the salon's location, into a Cutoff.
func CutoffAt(t time.Time) Cutoff {
	return Cutoff{
		Date:   t.Format(availability.DateLayout),
		Minute: availability.NewTimeOfDay(t.Hour(), t.Minute()),
	}
}
