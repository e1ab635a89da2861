package controllers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EshRan/pooja-admin-ui/client"
	"github.com/EshRan/pooja-admin-ui/controllers"
	"github.com/EshRan/pooja-admin-ui/forms"
)

func TestOpenForCreateStartsFromDefaults(t *testing.T) {
	session := &controllers.EditSession{}
	session.OpenForCreate(forms.Item().Defaults())

	assert.Equal(t, controllers.SessionCreate, session.Mode())
	assert.Equal(t, "true", session.Field("isInStock"))
	assert.Equal(t, "0", session.Field("price"))

	_, editing := session.EditingID()
	assert.False(t, editing)
}

func TestOpenForEditTracksRecord(t *testing.T) {
	session := &controllers.EditSession{}
	session.OpenForEdit(9, map[string]string{"itemName": "Rice"})

	assert.Equal(t, controllers.SessionEdit, session.Mode())
	assert.Equal(t, "Rice", session.Field("itemName"))

	id, editing := session.EditingID()
	assert.True(t, editing)
	assert.Equal(t, 9, id)
}

func TestReopeningResetsBufferAndAttachment(t *testing.T) {
	session := &controllers.EditSession{}
	session.OpenForEdit(9, map[string]string{"itemName": "Rice"})
	session.StageAttachment(&client.Attachment{FileName: "rice.png", Data: []byte("png")})

	session.OpenForCreate(forms.Nut().Defaults())
	assert.Equal(t, "", session.Field("itemName"), "a new session never sees the previous buffer")
	assert.Nil(t, session.Attachment(), "staged attachments do not survive a reopen")
}

func TestCloseResetsEverything(t *testing.T) {
	session := &controllers.EditSession{}
	session.OpenForEdit(9, map[string]string{"itemName": "Rice"})
	session.StageAttachment(&client.Attachment{FileName: "rice.png", Data: []byte("png")})
	session.Close()

	assert.Equal(t, controllers.SessionClosed, session.Mode())
	assert.Equal(t, "", session.Field("itemName"))
	assert.Nil(t, session.Attachment())

	session.SetField("itemName", "late write")
	assert.Equal(t, "", session.Field("itemName"), "a closed session ignores writes")
}
