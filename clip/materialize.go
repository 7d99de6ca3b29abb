package clip

import (
	"context"
	"path"

	"github.com/fwojciec/webclip"
)

// EnsurePath makes sure the folder at dir and all of its ancestors
// exist. It climbs from dir toward the top of the hierarchy collecting
// folders that do not exist yet, then creates the pending folders in
// reverse discovery order so a child is never created before its
// parent. A second call with the same path performs zero creations.
//
// Creation is not atomic: if a create fails partway, folders already
// created remain in place.
func EnsurePath(ctx context.Context, st webclip.Storage, dir string) error {
	var pending []string

	for cur := dir; cur != "" && cur != "." && cur != "/"; cur = parentDir(cur) {
		exists, err := st.FolderExists(ctx, cur)
		if err != nil {
			return err
		}
		if exists {
			break
		}
		pending = append(pending, cur)
	}

	for i := len(pending) - 1; i >= 0; i-- {
		if err := st.CreateFolder(ctx, pending[i]); err != nil {
			// A concurrent task may have created this folder between
			// the existence check and the create; re-check before
			// failing.
			if exists, checkErr := st.FolderExists(ctx, pending[i]); checkErr == nil && exists {
				continue
			}
			return err
		}
	}

	return nil
}

func parentDir(p string) string {
	d := path.Dir(p)
	if d == p {
		return ""
	}
	return d
}
