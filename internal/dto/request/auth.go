package request

type VerifyCodeRequest struct {
	Code string `json:"code" validate:"required,len=5,alphanum"`
}
