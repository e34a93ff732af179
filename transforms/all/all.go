package all

import (
	_ "github.com/qiniu/convkit/transforms/date"
	_ "github.com/qiniu/convkit/transforms/mutate"
)
