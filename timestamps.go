package lapisdb

import "time"

// TimestampKey is the directive key recognized by Insert and Update. When it
// is present and truthy, the builder removes it and fills the missing
// created_at/updated_at columns with the current UTC time.
const TimestampKey = "_timestamp"

const timestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp renders t in UTC as "YYYY-MM-DD HH:MM:SS", the format the
// timestamp directive stores.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// applyTimestamps resolves the timestamp directive. The caller's map is never
// mutated; when the directive is present, a copy without the directive key is
// returned with the missing timestamp columns filled in. Insert defaults both
// columns, Update only updated_at.
func applyTimestamps(vals Values, withCreated bool) Values {
	v, ok := vals[TimestampKey]
	if !ok {
		return vals
	}
	out := make(Values, len(vals)+1)
	for k, val := range vals {
		if k != TimestampKey {
			out[k] = val
		}
	}
	if v == nil || v == false {
		return out
	}
	now := FormatTimestamp(time.Now())
	if _, has := out["updated_at"]; !has {
		out["updated_at"] = now
	}
	if withCreated {
		if _, has := out["created_at"]; !has {
			out["created_at"] = now
		}
	}
	return out
}
