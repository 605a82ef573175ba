package explorer

import "os"

const rwx = "rwxrwxrwx"

// FormatPermissions renders the nine owner/group/other permission bits of
// mode. Special bits and the file type are ignored.
func FormatPermissions(mode os.FileMode) string {
	perm := mode.Perm()
	buf := make([]byte, len(rwx))
	for i := range rwx {
		if perm&(1<<uint(len(rwx)-1-i)) != 0 {
			buf[i] = rwx[i]
		} else {
			buf[i] = '-'
		}
	}

	return string(buf)
}
