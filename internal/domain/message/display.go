package message

import "fmt"

// DeletedPlaceholder replaces every payload field of a deleted message.
const DeletedPlaceholder = "This message was deleted"

// DisplayText is what the cell body shows for this message.
func (m Message) DisplayText() string {
	if m.IsDeleted {
		return DeletedPlaceholder
	}
	return m.Text
}

// CheckinHeader is the card title of a check-in message.
func (m Message) CheckinHeader() string {
	if m.Checkin != nil && m.Checkin.DayNumber > 0 {
		return fmt.Sprintf("Day %d - Check In", m.Checkin.DayNumber)
	}
	return "Check In"
}
