package v1alpha1

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/pkg/version"
)

type InfoReply v1alpha1.Info

func (i InfoReply) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// (GET /api/v1/info)
func (h *ServiceHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	versionInfo := version.Get()
	_ = render.Render(w, r, InfoReply{
		GitCommit:   versionInfo.GitCommit,
		VersionName: versionInfo.GitVersion,
	})
}
