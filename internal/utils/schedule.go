package utils

// NextPaymentDate computes the next scheduled payment date for a recurring
// bill: the requested day-of-month in the month following reference. When the
// target month is too short for the requested day, the day falls back one at
// a time until it lands on a real date. The fallback floors at day 1 so the
// loop always terminates.
func NextPaymentDate(recurringDay int, reference Date) Date {
	year, month := reference.Year, reference.Month+1
	if month > 12 {
		month = 1
		year++
	}

	return Date{Year: year, Month: month, Day: clampDay(recurringDay, year, month)}
}

// NextOccurrence computes the next date a recurring bill falls due after
// reference: the recurring day later in reference's own month when it is
// still ahead, otherwise the following month. A due date equal to reference
// counts as passed. Short months use the same day fallback as
// NextPaymentDate.
func NextOccurrence(recurringDay int, reference Date) Date {
	day := clampDay(recurringDay, reference.Year, reference.Month)
	if reference.Day < day {
		return Date{Year: reference.Year, Month: reference.Month, Day: day}
	}
	return NextPaymentDate(recurringDay, reference)
}

// clampDay fits a requested day-of-month into the given month, falling back
// one day at a time and flooring at 1.
func clampDay(day, year, month int) int {
	if day < 1 {
		day = 1
	}
	for day > 1 && day > DaysInMonth(year, month) {
		day--
	}
	return day
}
