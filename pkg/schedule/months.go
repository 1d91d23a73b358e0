package schedule

var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthIndexOf does a case-sensitive lookup; -1 when name is not a month.
func MonthIndexOf(name string) int {
	for i, m := range MonthNames {
		if m == name {
			return i
		}
	}
	return -1
}

// MonthLabel names the bucket offset months after start. Unknown start names
// are echoed back unchanged for every offset.
func MonthLabel(start string, offset int) string {
	i := MonthIndexOf(start)
	if i == -1 {
		return start
	}
	return MonthNames[(i+offset)%12]
}
