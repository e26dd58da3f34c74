package handler

import "fmt"

// Command prefix for password changes, e.g. 修改密码asd123456.
const passwordCommand = "修改密码"

// Fixed reply texts. The wording is part of the user-facing contract and
// must stay byte-identical across releases; players follow these
// instructions literally.
const (
	notFriendReply = "如果我们不是好友，发送账号信息会被屏蔽，请添加我之后再注册"

	alreadyRegisteredReply = "您已注册账号，如需修改密码，请发送【修改密码+新密码】，例如：【修改密码asd123456】"

	passwordLengthReply  = "密码仅支持3-16位"
	passwordCharsetReply = "密码不支持符号、中文，请重新输入"
	accountNotFoundReply = "账号不存在或密码未修改"

	registrationFailedPrefix = "注册失败: "
)

// registrationReply renders the bordered block presented exactly once after
// a successful registration; it is the only place the plaintext password
// ever appears.
func registrationReply(identity, password string, cera, ceraPoint int) string {
	return fmt.Sprintf(`-----------------------------------
账号：%s
密码：%s
赠送：%d点券 %d代币
如要修改密码：发送【修改密码+新密码】
例：【修改密码asd123456】
-----------------------------------`, identity, password, cera, ceraPoint)
}

// passwordChangedReply renders the confirmation block echoing the accepted
// new password.
func passwordChangedReply(identity, password string) string {
	return fmt.Sprintf(`---------------------------------
账号：%s
密码：%s
密码修改成功
---------------------------------`, identity, password)
}
